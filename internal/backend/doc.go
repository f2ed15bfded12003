// Package backend owns the imaging engines that do the pixel work behind a
// parsed geometry, and the process-wide lifecycle of the native ones.
//
// # Engines
//
//   - "imaging": github.com/disintegration/imaging, pure Go. The default.
//   - "bild": github.com/anthonynsimon/bild/transform, pure Go.
//   - "vips": github.com/davidbyttow/govips (libvips). Only available in
//     cgo builds with libvips installed.
//
// # Lifecycle
//
// Native libraries are initialized once per process and never implicitly.
// The embedding program calls Backend.Startup before asking for an engine
// and Backend.Shutdown on exit:
//
//	be := backend.New(backend.Config{Default: "imaging"})
//	if err := be.Startup(); err != nil {
//	    log.Fatal(err)
//	}
//	defer be.Shutdown()
//
//	eng, err := be.Engine("")
//
// Startup is idempotent: the first call does the work and every later call
// returns the first call's result. Engine returns ErrNotStarted until then.
//
// A Backend is safe for concurrent use.
package backend
