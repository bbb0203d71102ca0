package components

import (
	"log/slog"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/pojntfx/termini/assets/resources"
	"github.com/pojntfx/termini/internal/geometry"
	"github.com/pojntfx/termini/internal/shell"
)

type Application struct {
	*adw.Application

	log        *slog.Logger
	controller *shell.Controller

	err error
}

func NewApplication(log *slog.Logger, store geometry.Store) *Application {
	a := &Application{
		Application: adw.NewApplication(resources.AppID, gio.ApplicationFlagsNone),

		log: log,
	}

	a.controller = shell.NewController(
		slog.New(log.Handler().WithGroup("shell")),
		&toolkit{
			log: log,
			app: a.Application,
		},
		func() (shell.Window, error) {
			w, err := NewWindow(slog.New(log.Handler().WithGroup("window")), a.Application, store)
			if err != nil {
				return nil, err
			}

			return w, nil
		},
		resources.AppID,
	)

	a.ConnectStartup(a.controller.Startup)

	a.ConnectActivate(func() {
		if err := a.controller.Activate(); err != nil {
			// Without a window there is nothing left to do
			a.log.Error("Could not activate application", "err", err)

			a.err = err
			a.Quit()
		}
	})

	return a
}

// Run blocks until the application quits. The returned error is set if the
// main window could not be built.
func (a *Application) Run(args []string) (int, error) {
	code := a.Application.Run(args)

	return code, a.err
}
