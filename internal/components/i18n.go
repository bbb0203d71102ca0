package components

import (
	"log/slog"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	. "github.com/pojntfx/go-gettext/pkg/i18n"
	"github.com/pojntfx/termini/assets/resources"
	"github.com/pojntfx/termini/internal/locales"
	"github.com/pojntfx/termini/po"
)

// SetupI18n binds the text domain to localeDir, or to a self-extracted copy
// of the embedded catalogue if localeDir is empty. The returned function
// removes the extracted copy.
func SetupI18n(log *slog.Logger, localeDir string) (func() error, error) {
	cleanup := func() error { return nil }

	if localeDir == "" {
		languages, err := locales.Compiled(po.FS, resources.GettextPackage)
		if err != nil {
			return nil, err
		}

		if len(languages) == 0 {
			log.Warn("Embedded translations are not compiled, run go generate ./... before building", "domain", resources.GettextPackage)
		}

		dir, c, err := locales.Extract(po.FS)
		if err != nil {
			return nil, err
		}

		localeDir = dir
		cleanup = c
	}

	log.Debug("Binding text domain", "domain", resources.GettextPackage, "localeDir", localeDir)

	if err := InitI18n(resources.GettextPackage, localeDir); err != nil {
		_ = cleanup()

		return nil, err
	}

	glib.SetApplicationName(L("Termini"))

	return cleanup, nil
}
