package tkpath

import (
	"fmt"
	"image"
	"sort"
	"sync"
)

// Factory creates a drawing context that renders into dst. It is called
// with the configuration built from Open's options. A factory that fails
// must not return a partially initialized context.
type Factory func(dst *image.RGBA, cfg RenderConfig) (DrawingContext, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a backend available by name. It is meant to be called
// from the init function of a backend package, following the
// database/sql driver pattern:
//
//	func init() {
//	    tkpath.Register("scanline", New)
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("tkpath: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("tkpath: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend. It is a no-op for unknown names and is
// mostly useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Open creates a drawing context from the named backend, rendering into
// dst.
//
//	import _ "github.com/gogpu/tkpath/backend/immediate"
//
//	ctx, err := tkpath.Open("immediate", dst)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
func Open(name string, dst *image.RGBA, opts ...Option) (DrawingContext, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	if dst == nil {
		return nil, fmt.Errorf("%w: %s: nil destination", ErrContextCreate, name)
	}
	cfg := NewRenderConfig(opts...)
	ctx, err := factory(dst, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrContextCreate, name, err)
	}
	if ctx == nil {
		return nil, fmt.Errorf("%w: %s returned no context", ErrContextCreate, name)
	}
	return ctx, nil
}

// MustOpen is like Open but panics on error.
func MustOpen(name string, dst *image.RGBA, opts ...Option) DrawingContext {
	ctx, err := Open(name, dst, opts...)
	if err != nil {
		panic(err)
	}
	return ctx
}

// Render opens a context, runs fn and closes the context on every exit
// path, including panics in fn. The error of fn takes precedence over the
// error of Close.
func Render(name string, dst *image.RGBA, fn func(DrawingContext) error, opts ...Option) (err error) {
	ctx, err := Open(name, dst, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ctx.Close(); cerr != nil {
			if err == nil {
				err = cerr
			} else {
				NewRenderConfig(opts...).Log().Warn("tkpath: close after failed render", "backend", name, "err", cerr)
			}
		}
	}()
	return fn(ctx)
}

// Backends returns the sorted names of registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is a registered backend.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Count returns the number of registered backends.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(factories)
}
