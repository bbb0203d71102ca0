package components

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/pojntfx/termini/assets/resources"
	"github.com/pojntfx/termini/internal/geometry"
)

func TestMain(m *testing.M) {
	// Must be set before GIO picks its default backend
	if err := os.Setenv("GSETTINGS_BACKEND", "memory"); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func newTestGSettings(t *testing.T) *GSettings {
	t.Helper()

	compiler, err := exec.LookPath("glib-compile-schemas")
	if err != nil {
		t.Skip("glib-compile-schemas is not installed")
	}

	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join("..", "..", "assets", "resources", resources.AppID+".gschema.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, resources.AppID+".gschema.xml"), src, 0o644); err != nil {
		t.Fatal(err)
	}

	if out, err := exec.Command(compiler, dir).CombinedOutput(); err != nil {
		t.Fatalf("glib-compile-schemas: %v: %s", err, out)
	}

	s, err := newSettingsFromDirectory(dir, resources.AppID)
	if err != nil {
		t.Fatalf("newSettingsFromDirectory() error = %v", err)
	}

	// The memory backend is shared by every test in the process
	reset := func() {
		for _, key := range []string{geometry.KeyWindowWidth, geometry.KeyWindowHeight, geometry.KeyIsMaximized} {
			s.Reset(key)
		}
	}
	reset()
	t.Cleanup(reset)

	return NewGSettings(s)
}

func TestGSettingsDefaults(t *testing.T) {
	s := newTestGSettings(t)

	want := geometry.Geometry{Width: 960, Height: 540}
	if got := geometry.Load(s); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestGSettingsSaveAppliesBatch(t *testing.T) {
	s := newTestGSettings(t)

	want := geometry.Geometry{Width: 1280, Height: 720, Maximized: true}
	if err := geometry.Save(s, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if s.settings.HasUnapplied() {
		t.Error("batch still pending after Save")
	}
	if got := geometry.Load(s); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestGSettingsRevertDropsPendingWrites(t *testing.T) {
	s := newTestGSettings(t)

	s.Delay()
	if err := s.SetInt(geometry.KeyWindowWidth, 1280); err != nil {
		t.Fatal(err)
	}
	s.Revert()

	if err := s.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got := s.Int(geometry.KeyWindowWidth); got != 960 {
		t.Errorf("window-width = %d after revert, want 960", got)
	}
}

func TestGSettingsRejectedWrite(t *testing.T) {
	s := newTestGSettings(t)

	if err := s.SetInt(geometry.KeyWindowWidth, 100000); !errors.Is(err, ErrCouldNotWriteSettingsKey) {
		t.Errorf("SetInt() error = %v, want %v", err, ErrCouldNotWriteSettingsKey)
	}

	if got := s.Int(geometry.KeyWindowWidth); got != 960 {
		t.Errorf("window-width = %d, want 960", got)
	}
}

func TestGSettingsRejectedWriteRevertsSave(t *testing.T) {
	s := newTestGSettings(t)

	err := geometry.Save(s, geometry.Geometry{Width: 800, Height: 100000})
	if !errors.Is(err, ErrCouldNotWriteSettingsKey) {
		t.Fatalf("Save() error = %v, want %v", err, ErrCouldNotWriteSettingsKey)
	}

	if got := s.Int(geometry.KeyWindowWidth); got != 960 {
		t.Errorf("partial write leaked: window-width = %d", got)
	}
}

func TestSettingsFromDirectoryWithoutSchemas(t *testing.T) {
	if _, err := newSettingsFromDirectory(t.TempDir(), resources.AppID); !errors.Is(err, ErrCouldNotLoadEmbeddedSchema) {
		t.Errorf("newSettingsFromDirectory() error = %v, want %v", err, ErrCouldNotLoadEmbeddedSchema)
	}
}
