package settings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownBackend = errors.New("unknown settings backend")
)

type Backend string

const (
	// BackendAuto uses GSettings if the schema is installed and falls back to
	// the settings file otherwise.
	BackendAuto      Backend = "auto"
	BackendGSettings Backend = "gsettings"
	BackendFile      Backend = "file"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendGSettings, BackendFile:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q (expected one of %v, %v or %v)", ErrUnknownBackend, s, BackendAuto, BackendGSettings, BackendFile)
	}
}
