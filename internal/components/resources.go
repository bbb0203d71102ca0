package components

import (
	"fmt"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/pojntfx/termini/assets/resources"
)

func InitToolkit() error {
	if !gtk.InitCheck() {
		return ErrCouldNotInitToolkit
	}

	return nil
}

// RegisterResources loads the compiled resource bundle from dataDir. Nothing
// in the UI can be built without it.
func RegisterResources(dataDir string) error {
	p := filepath.Join(dataDir, resources.ResourcesFileName)

	r, err := gio.ResourceLoad(p)
	if err != nil {
		return fmt.Errorf("%w from %v: %w", ErrCouldNotLoadResources, p, err)
	}

	gio.ResourcesRegister(r)

	return nil
}
