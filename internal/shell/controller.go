package shell

import (
	"errors"
	"fmt"
	"log/slog"
)

const (
	ActionQuit  = "quit"
	ActionAbout = "about"
)

var (
	ErrCouldNotCreateWindow = errors.New("could not create window")

	accelsQuit = []string{"<primary>q"}
)

type Window interface {
	Present()
	Close()
}

// Toolkit performs the side effects the controller asks of the GUI toolkit.
type Toolkit interface {
	SetDefaultIconName(name string)
	LoadCSS() error
	AddAction(name string, activate func())
	SetAccelsForAction(detailedAction string, accels []string)
	ShowAbout(parent Window)
	Quit()
}

type WindowFactory func() (Window, error)

type Controller struct {
	log       *slog.Logger
	toolkit   Toolkit
	newWindow WindowFactory
	iconName  string

	window    Slot[Window]
	startedUp bool
}

func NewController(
	log *slog.Logger,
	toolkit Toolkit,
	newWindow WindowFactory,
	iconName string,
) *Controller {
	return &Controller{
		log:       log,
		toolkit:   toolkit,
		newWindow: newWindow,
		iconName:  iconName,
	}
}

func (c *Controller) Startup() {
	c.log.Debug("Handling startup")

	if c.startedUp {
		c.log.Debug("Already started up, skipping")

		return
	}
	c.startedUp = true

	c.toolkit.SetDefaultIconName(c.iconName)

	if err := c.toolkit.LoadCSS(); err != nil {
		c.log.Debug("Could not load CSS, continuing without it", "err", err)
	}

	c.toolkit.AddAction(ActionQuit, c.Quit)
	c.toolkit.AddAction(ActionAbout, c.About)

	c.toolkit.SetAccelsForAction("app."+ActionQuit, accelsQuit)
}

func (c *Controller) Activate() error {
	c.log.Debug("Handling activate")

	if w, ok := c.window.Get(); ok {
		c.log.Debug("Presenting existing window")

		w.Present()

		return nil
	}

	w, err := c.newWindow()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCouldNotCreateWindow, err)
	}

	c.window.Set(w)

	w.Present()

	return nil
}

func (c *Controller) MainWindow() (Window, bool) {
	return c.window.Get()
}

// Quit closes the main window before quitting so that its close request
// handler gets to persist the window state.
func (c *Controller) Quit() {
	c.log.Debug("Handling quit")

	if w, ok := c.window.Get(); ok {
		w.Close()
	}

	c.toolkit.Quit()
}

func (c *Controller) About() {
	c.log.Debug("Showing about dialog")

	w, ok := c.window.Get()
	if !ok {
		c.log.Debug("No main window to parent about dialog to")
	}

	c.toolkit.ShowAbout(w)
}
