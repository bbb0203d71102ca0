package components

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/pojntfx/termini/assets/resources"
	"github.com/pojntfx/termini/internal/geometry"
	"github.com/pojntfx/termini/internal/settings"
)

// GSettings adapts a gio.Settings to a geometry.Store.
type GSettings struct {
	settings *gio.Settings
}

func NewGSettings(s *gio.Settings) *GSettings {
	return &GSettings{
		settings: s,
	}
}

func (s *GSettings) Int(key string) int {
	return s.settings.Int(key)
}

func (s *GSettings) SetInt(key string, value int) error {
	if !s.settings.SetInt(key, value) {
		return fmt.Errorf("%w: %v", ErrCouldNotWriteSettingsKey, key)
	}

	return nil
}

func (s *GSettings) Boolean(key string) bool {
	return s.settings.Boolean(key)
}

func (s *GSettings) SetBoolean(key string, value bool) error {
	if !s.settings.SetBoolean(key, value) {
		return fmt.Errorf("%w: %v", ErrCouldNotWriteSettingsKey, key)
	}

	return nil
}

func (s *GSettings) Delay() {
	s.settings.Delay()
}

// Apply commits delayed writes and waits for the backend to store them, since
// the process may exit right after the window is closed. g_settings_apply
// reports nothing, so a batch still pending afterwards counts as a failure.
func (s *GSettings) Apply() error {
	s.settings.Apply()

	gio.SettingsSync()

	if s.settings.HasUnapplied() {
		return ErrCouldNotApplySettings
	}

	return nil
}

func (s *GSettings) Revert() {
	s.settings.Revert()
}

// SchemaInstalled must be checked before gio.NewSettings, GLib aborts the
// process when asked for an unknown schema.
func SchemaInstalled(schemaID string) bool {
	source := gio.SettingsSchemaSourceGetDefault()
	if source == nil {
		return false
	}

	return source.Lookup(schemaID, true) != nil
}

// InitEmbeddedSettings self-extracts the compiled schema from the registered
// resource bundle, so GSettings works without the schema being installed.
func InitEmbeddedSettings() (*gio.Settings, error) {
	sc, err := gio.ResourcesLookupData(resources.ResourceGSchemasCompiledPath, gio.ResourceLookupFlagsNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCouldNotLoadEmbeddedSchema, err)
	}

	st, err := os.MkdirTemp("", "termini-schemas-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(st)

	if err := os.WriteFile(filepath.Join(st, path.Base(resources.ResourceGSchemasCompiledPath)), sc.Data(), os.ModePerm); err != nil {
		return nil, err
	}

	return newSettingsFromDirectory(st, resources.AppID)
}

// newSettingsFromDirectory layers the schemas in dir over the default source.
// The compiled file is mapped once the source is created, so dir may be
// removed afterwards.
func newSettingsFromDirectory(dir, schemaID string) (*gio.Settings, error) {
	source, err := gio.NewSettingsSchemaSourceFromDirectory(dir, gio.SettingsSchemaSourceGetDefault(), true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCouldNotLoadEmbeddedSchema, err)
	}

	schema := source.Lookup(schemaID, false)
	if schema == nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaNotInstalled, schemaID)
	}

	return gio.NewSettingsFull(schema, nil, schema.Path()), nil
}

// openGSettings prefers the installed schema and falls back to the one
// bundled with the resources.
func openGSettings(log *slog.Logger) (*GSettings, error) {
	if SchemaInstalled(resources.AppID) {
		log.Debug("Using installed GSettings schema", "schema", resources.AppID)

		return NewGSettings(gio.NewSettings(resources.AppID)), nil
	}

	s, err := InitEmbeddedSettings()
	if err != nil {
		return nil, err
	}

	log.Debug("Using embedded GSettings schema", "schema", resources.AppID)

	return NewGSettings(s), nil
}

func OpenStore(log *slog.Logger, backend settings.Backend, filePath string) (geometry.Store, error) {
	switch backend {
	case settings.BackendGSettings:
		return openGSettings(log)

	case settings.BackendFile:
		log.Debug("Using settings file", "path", filePath)

		return settings.NewFile(log, filePath)

	default:
		s, err := openGSettings(log)
		if err == nil {
			return s, nil
		}

		log.Info("GSettings unavailable, falling back to settings file", "schema", resources.AppID, "path", filePath, "err", err)

		return settings.NewFile(log, filePath)
	}
}
