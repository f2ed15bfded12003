package backend

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// DefaultEngine is used when Config.Default is empty.
const DefaultEngine = "imaging"

// Config selects the default engine and configures the native ones.
type Config struct {
	// Default is the engine returned by Engine(""): "imaging", "bild" or "vips".
	Default string

	// Vips configures libvips. It is started when Enabled is set or when
	// Default is "vips".
	Vips VipsConfig

	// Logger receives lifecycle and native-library messages. Nil means
	// log.Default().
	Logger *log.Logger

	// Debug enables verbose native-library logging.
	Debug bool
}

// VipsConfig is passed to libvips at startup.
type VipsConfig struct {
	Enabled       bool
	Concurrency   int
	MaxCacheMemMB int
}

// Info describes the backend state for diagnostics.
type Info struct {
	Started bool     `json:"started"`
	Default string   `json:"default"`
	Engines []string `json:"engines"`
}

// errShutdown is returned by Startup once the backend has been shut down;
// native libraries cannot be brought back up in the same process.
var errShutdown = errors.New("backend already shut down")

// Backend holds the registered engines and the native lifecycle.
type Backend struct {
	mu       sync.Mutex
	cfg      Config
	started  bool
	closed   bool
	startErr error
	engines  map[string]Engine
}

// New creates a Backend. No native library is touched until Startup.
func New(cfg Config) *Backend {
	if cfg.Default == "" {
		cfg.Default = DefaultEngine
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Backend{cfg: cfg}
}

// Startup initializes the native libraries the configuration asks for and
// registers the engines. It is idempotent: only the first call has an
// effect, and later calls return the first call's result.
func (b *Backend) Startup() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errShutdown
	}
	if b.started || b.startErr != nil {
		return b.startErr
	}

	engines := map[string]Engine{
		"imaging": imagingEngine{},
		"bild":    bildEngine{},
	}

	if b.cfg.Default == "vips" || b.cfg.Vips.Enabled {
		if err := startVips(b.cfg.Vips, b.cfg.Logger, b.cfg.Debug); err != nil {
			b.startErr = fmt.Errorf("failed to start vips: %w", err)
			return b.startErr
		}
		engines["vips"] = vipsEngine{}
	}

	if _, ok := engines[b.cfg.Default]; !ok {
		b.startErr = fmt.Errorf("%w: %s", ErrUnknownEngine, b.cfg.Default)
		return b.startErr
	}

	b.engines = engines
	b.started = true
	if b.cfg.Debug {
		b.cfg.Logger.Printf("backend started: default=%s engines=%v", b.cfg.Default, b.namesLocked())
	}
	return nil
}

// Shutdown releases native state. It is safe to call more than once, and
// safe to call without a prior Startup.
func (b *Backend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	if _, ok := b.engines["vips"]; ok {
		stopVips()
	}
	b.engines = nil
	b.started = false
	b.closed = true
}

// Engine returns the named engine, or the default one for "".
func (b *Backend) Engine(name string) (Engine, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started {
		return nil, ErrNotStarted
	}
	if name == "" {
		name = b.cfg.Default
	}
	if eng, ok := b.engines[name]; ok {
		return eng, nil
	}
	if name == "vips" {
		return nil, fmt.Errorf("%w: vips is not enabled", ErrUnavailable)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
}

// Started reports whether Startup has completed successfully.
func (b *Backend) Started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

// Info reports the current state.
func (b *Backend) Info() Info {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Info{
		Started: b.started,
		Default: b.cfg.Default,
		Engines: b.namesLocked(),
	}
}

func (b *Backend) namesLocked() []string {
	names := make([]string, 0, len(b.engines))
	for name := range b.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KnownEngines lists every engine name this build understands, whether or
// not it is enabled.
func KnownEngines() []string {
	return []string{"bild", "imaging", "vips"}
}
