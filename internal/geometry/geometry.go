package geometry

const (
	KeyWindowWidth  = "window-width"
	KeyWindowHeight = "window-height"
	KeyIsMaximized  = "is-maximized"
)

// Geometry is the window state persisted between runs. Width and Height are
// the unmaximized (default) size, so a maximized window keeps the size it
// returns to when it is unmaximized.
type Geometry struct {
	Width     int
	Height    int
	Maximized bool
}

// Store is a synchronous key-value settings backend.
type Store interface {
	Int(key string) int
	SetInt(key string, value int) error
	Boolean(key string) bool
	SetBoolean(key string, value bool) error
}

// Batcher is implemented by stores which can hold back writes and commit them
// together.
type Batcher interface {
	Delay()
	Apply() error
	Revert()
}

// Target is the window surface a geometry is applied to and read from.
type Target interface {
	DefaultSize() (width, height int)
	SetDefaultSize(width, height int)
	IsMaximized() bool
	Maximize()
}

func Load(store Store) Geometry {
	return Geometry{
		Width:     store.Int(KeyWindowWidth),
		Height:    store.Int(KeyWindowHeight),
		Maximized: store.Boolean(KeyIsMaximized),
	}
}

// Save writes all three keys. If the store is a Batcher, they are committed as
// one unit and nothing is kept if any single write fails.
func Save(store Store, g Geometry) error {
	b, batched := store.(Batcher)
	if batched {
		b.Delay()
	}

	if err := saveKeys(store, g); err != nil {
		if batched {
			b.Revert()
		}

		return err
	}

	if batched {
		return b.Apply()
	}

	return nil
}

func saveKeys(store Store, g Geometry) error {
	if err := store.SetInt(KeyWindowWidth, g.Width); err != nil {
		return err
	}

	if err := store.SetInt(KeyWindowHeight, g.Height); err != nil {
		return err
	}

	return store.SetBoolean(KeyIsMaximized, g.Maximized)
}

// Apply sets the default size first and requests maximization afterwards.
func Apply(target Target, g Geometry) {
	target.SetDefaultSize(g.Width, g.Height)

	if g.Maximized {
		target.Maximize()
	}
}

// Capture reads the default size, not the allocated one.
func Capture(target Target) Geometry {
	width, height := target.DefaultSize()

	return Geometry{
		Width:     width,
		Height:    height,
		Maximized: target.IsMaximized(),
	}
}
