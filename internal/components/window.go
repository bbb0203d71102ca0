package components

import (
	"log/slog"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/pojntfx/termini/assets/resources"
	"github.com/pojntfx/termini/internal/geometry"
)

const (
	windowObjectID = "main-window"

	cssClassDevel = "devel"
)

// Window is the main application window. Its geometry is restored when it is
// built and saved when a close is requested.
type Window struct {
	log       *slog.Logger
	window    *adw.ApplicationWindow
	lifecycle *geometry.Lifecycle
}

func NewWindow(log *slog.Logger, app *adw.Application, store geometry.Store) (*Window, error) {
	b := gtk.NewBuilderFromResource(resources.ResourceWindowUIPath)

	obj := b.GetObject(windowObjectID)
	if obj == nil {
		return nil, ErrMissingWindowObject
	}

	aw, ok := obj.Cast().(*adw.ApplicationWindow)
	if !ok {
		return nil, ErrMissingWindowObject
	}

	aw.SetApplication(&app.Application)

	w := &Window{
		log:       log,
		window:    aw,
		lifecycle: geometry.NewLifecycle(log, store, aw),
	}

	if resources.Profile == resources.ProfileDevel {
		aw.AddCSSClass(cssClassDevel)
	}

	if err := w.lifecycle.OnConstructed(); err != nil {
		return nil, err
	}

	aw.ConnectCloseRequest(func() bool {
		return w.lifecycle.OnCloseRequest()
	})

	aw.ConnectDestroy(func() {
		if err := w.lifecycle.OnDestroyed(); err != nil {
			w.log.Warn("Unexpected window destroy", "err", err)
		}
	})

	return w, nil
}

func (w *Window) Present() {
	if err := w.lifecycle.OnShown(); err != nil {
		w.log.Warn("Presenting window in unexpected state", "err", err)
	}

	w.window.SetVisible(true)
	w.window.Present()
}

func (w *Window) Close() {
	w.window.Close()
}

func (w *Window) gtkWindow() *gtk.Window {
	return &w.window.Window
}
