package geometry

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

var errStoreUnavailable = errors.New("store unavailable")

type memoryStore struct {
	ints  map[string]int
	bools map[string]bool

	failKey string

	delayed  bool
	applied  int
	reverted int
	pending  map[string]any
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		ints:  map[string]int{},
		bools: map[string]bool{},
	}
}

func (s *memoryStore) Int(key string) int { return s.ints[key] }
func (s *memoryStore) Boolean(key string) bool { return s.bools[key] }

func (s *memoryStore) SetInt(key string, value int) error {
	if key == s.failKey {
		return errStoreUnavailable
	}

	if s.delayed {
		s.pending[key] = value

		return nil
	}

	s.ints[key] = value

	return nil
}

func (s *memoryStore) SetBoolean(key string, value bool) error {
	if key == s.failKey {
		return errStoreUnavailable
	}

	if s.delayed {
		s.pending[key] = value

		return nil
	}

	s.bools[key] = value

	return nil
}

type batchingStore struct {
	*memoryStore
}

func (s batchingStore) Delay() {
	s.delayed = true
	s.pending = map[string]any{}
}

func (s batchingStore) Apply() error {
	for k, v := range s.pending {
		switch v := v.(type) {
		case int:
			s.ints[k] = v
		case bool:
			s.bools[k] = v
		}
	}

	s.delayed = false
	s.pending = nil
	s.applied++

	return nil
}

func (s batchingStore) Revert() {
	s.delayed = false
	s.pending = nil
	s.reverted++
}

type fakeWindow struct {
	width, height int
	maximized     bool

	maximizeCalls int
}

func (w *fakeWindow) DefaultSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) SetDefaultSize(width, height int) {
	w.width = width
	w.height = height
}

func (w *fakeWindow) IsMaximized() bool { return w.maximized }

func (w *fakeWindow) Maximize() {
	w.maximized = true
	w.maximizeCalls++
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadReadsAllKeys(t *testing.T) {
	s := newMemoryStore()
	s.ints[KeyWindowWidth] = 800
	s.ints[KeyWindowHeight] = 600
	s.bools[KeyIsMaximized] = true

	got := Load(s)
	want := Geometry{Width: 800, Height: 600, Maximized: true}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveWritesAllKeys(t *testing.T) {
	s := newMemoryStore()

	if err := Save(s, Geometry{Width: 1024, Height: 768, Maximized: true}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if s.ints[KeyWindowWidth] != 1024 || s.ints[KeyWindowHeight] != 768 || !s.bools[KeyIsMaximized] {
		t.Errorf("unexpected store contents: ints=%v bools=%v", s.ints, s.bools)
	}
}

func TestSaveBatchedAppliesOnce(t *testing.T) {
	s := batchingStore{newMemoryStore()}

	if err := Save(s, Geometry{Width: 640, Height: 480}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if s.applied != 1 {
		t.Errorf("expected 1 apply, got %d", s.applied)
	}
	if s.ints[KeyWindowWidth] != 640 || s.ints[KeyWindowHeight] != 480 {
		t.Errorf("unexpected store contents: %v", s.ints)
	}
}

func TestSaveBatchedRevertsOnFailure(t *testing.T) {
	s := batchingStore{newMemoryStore()}
	s.ints[KeyWindowWidth] = 100
	s.failKey = KeyIsMaximized

	err := Save(s, Geometry{Width: 640, Height: 480, Maximized: true})
	if !errors.Is(err, errStoreUnavailable) {
		t.Fatalf("Save() error = %v, want %v", err, errStoreUnavailable)
	}

	if s.reverted != 1 || s.applied != 0 {
		t.Errorf("expected revert without apply, got reverted=%d applied=%d", s.reverted, s.applied)
	}
	if s.ints[KeyWindowWidth] != 100 {
		t.Errorf("partial write leaked: width=%d", s.ints[KeyWindowWidth])
	}
}

func TestApplyMaximizesOnlyWhenFlagged(t *testing.T) {
	tests := []struct {
		name      string
		geometry  Geometry
		maximized bool
	}{
		{"normal", Geometry{Width: 800, Height: 600}, false},
		{"maximized", Geometry{Width: 800, Height: 600, Maximized: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWindow{}
			Apply(w, tt.geometry)

			if w.width != 800 || w.height != 600 {
				t.Errorf("default size = %dx%d, want 800x600", w.width, w.height)
			}
			if w.maximized != tt.maximized {
				t.Errorf("maximized = %v, want %v", w.maximized, tt.maximized)
			}
		})
	}
}

func TestGeometryRoundTrip(t *testing.T) {
	for _, g := range []Geometry{
		{Width: 1, Height: 1},
		{Width: 800, Height: 600},
		{Width: 1920, Height: 1080, Maximized: true},
		{Width: 3840, Height: 400, Maximized: false},
	} {
		s := newMemoryStore()

		first := &fakeWindow{width: g.Width, height: g.Height, maximized: g.Maximized}
		l := NewLifecycle(discardLogger(), s, first)
		if err := l.OnConstructed(); err != nil {
			t.Fatal(err)
		}
		first.SetDefaultSize(g.Width, g.Height)
		first.maximized = g.Maximized
		l.OnCloseRequest()

		second := &fakeWindow{}
		if err := NewLifecycle(discardLogger(), s, second).OnConstructed(); err != nil {
			t.Fatal(err)
		}

		if got := Capture(second); got != g {
			t.Errorf("round trip of %+v yielded %+v", g, got)
		}
	}
}
