package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"

	"github.com/pojntfx/termini/internal/geometry"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKey   = errors.New("unknown settings key")
	ErrInvalidValue = errors.New("invalid settings value")
	ErrNotDelayed   = errors.New("settings are not in delay mode")
)

// Defaults mirrors the defaults of the bundled GSettings schema.
var Defaults = map[string]any{
	geometry.KeyWindowWidth:  960,
	geometry.KeyWindowHeight: 540,
	geometry.KeyIsMaximized:  false,
}

// File is a settings store backed by a YAML document, used when the GSettings
// schema is not installed.
type File struct {
	log  *slog.Logger
	path string

	values  map[string]any
	pending map[string]any
}

func NewFile(log *slog.Logger, path string) (*File, error) {
	f := &File{
		log:    log,
		path:   path,
		values: maps.Clone(Defaults),
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("Settings file does not exist yet, using defaults", "path", path)

			return f, nil
		}

		return nil, err
	}

	var stored map[string]any
	if err := yaml.Unmarshal(content, &stored); err != nil {
		return nil, fmt.Errorf("could not parse settings file %v: %w", path, err)
	}

	for key, value := range stored {
		if err := validate(key, value); err != nil {
			return nil, fmt.Errorf("could not load settings file %v: %w", path, err)
		}

		f.values[key] = value
	}

	return f, nil
}

func validate(key string, value any) error {
	def, ok := Defaults[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}

	switch def.(type) {
	case int:
		if _, ok := value.(int); !ok {
			return fmt.Errorf("%w: %v must be an integer", ErrInvalidValue, key)
		}
	case bool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%w: %v must be a boolean", ErrInvalidValue, key)
		}
	}

	return nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) current(key string) any {
	if v, ok := f.pending[key]; ok {
		return v
	}

	return f.values[key]
}

func (f *File) Int(key string) int {
	v, _ := f.current(key).(int)

	return v
}

func (f *File) Boolean(key string) bool {
	v, _ := f.current(key).(bool)

	return v
}

func (f *File) SetInt(key string, value int) error {
	return f.set(key, value)
}

func (f *File) SetBoolean(key string, value bool) error {
	return f.set(key, value)
}

func (f *File) set(key string, value any) error {
	if err := validate(key, value); err != nil {
		return err
	}

	if f.pending != nil {
		f.pending[key] = value

		return nil
	}

	next := maps.Clone(f.values)
	next[key] = value

	if err := f.write(next); err != nil {
		return err
	}

	f.values = next

	return nil
}

// Delay holds back writes until Apply is called.
func (f *File) Delay() {
	if f.pending == nil {
		f.pending = map[string]any{}
	}
}

func (f *File) Apply() error {
	if f.pending == nil {
		return ErrNotDelayed
	}

	next := maps.Clone(f.values)
	maps.Copy(next, f.pending)

	f.pending = nil

	if err := f.write(next); err != nil {
		return err
	}

	f.values = next

	return nil
}

func (f *File) Revert() {
	f.pending = nil
}

func (f *File) write(values map[string]any) error {
	content, err := yaml.Marshal(values)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()

		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()

		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return err
	}

	f.log.Debug("Wrote settings file", "path", f.path)

	return nil
}
