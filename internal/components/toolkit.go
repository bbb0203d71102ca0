package components

import (
	"log/slog"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	. "github.com/pojntfx/go-gettext/pkg/i18n"
	"github.com/pojntfx/termini/assets/resources"
	"github.com/pojntfx/termini/internal/shell"
)

type toolkit struct {
	log *slog.Logger
	app *adw.Application
}

func (t *toolkit) SetDefaultIconName(name string) {
	gtk.WindowSetDefaultIconName(name)
}

// LoadCSS fails with ErrNoDisplay when running without a display, which only
// happens when no UI can be visible anyway.
func (t *toolkit) LoadCSS() error {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return ErrNoDisplay
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromResource(resources.ResourceStyleCSSPath)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)

	return nil
}

func (t *toolkit) AddAction(name string, activate func()) {
	action := gio.NewSimpleAction(name, nil)
	action.ConnectActivate(func(parameter *glib.Variant) {
		activate()
	})
	t.app.AddAction(action)
}

func (t *toolkit) SetAccelsForAction(detailedAction string, accels []string) {
	t.app.SetAccelsForAction(detailedAction, accels)
}

func (t *toolkit) ShowAbout(parent shell.Window) {
	d := gtk.NewAboutDialog()
	d.SetProgramName(L("Termini"))
	d.SetLogoIconName(resources.AppID)
	d.SetLicenseType(gtk.LicenseMITX11)
	d.SetWebsite(resources.WebsiteURL)
	d.SetVersion(resources.Version)
	d.SetAuthors(resources.Authors)
	d.SetArtists(resources.Artists)
	d.SetModal(true)

	if w, ok := parent.(*Window); ok && w != nil {
		d.SetTransientFor(w.gtkWindow())
	}

	d.Present()
}

func (t *toolkit) Quit() {
	t.app.Quit()
}
