package components

import "errors"

var (
	ErrCouldNotInitToolkit        = errors.New("could not initialize GTK")
	ErrCouldNotLoadResources      = errors.New("could not load resources")
	ErrCouldNotWriteSettingsKey   = errors.New("could not write settings key")
	ErrSchemaNotInstalled         = errors.New("settings schema is not installed")
	ErrCouldNotLoadEmbeddedSchema = errors.New("could not load embedded settings schema")
	ErrCouldNotApplySettings      = errors.New("could not apply delayed settings")
	ErrMissingWindowObject        = errors.New("missing window object in UI definition")
	ErrNoDisplay                  = errors.New("no default display")
)
