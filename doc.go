// Package fractal renders escape-time fractals into flat RGBA
// framebuffers with progressive, CPU-parallel refinement.
//
// # Overview
//
// The package is built around a single [Renderer] that owns a viewport
// into the complex plane, an iteration budget, a color scheme, and a
// reusable framebuffer. Panning, zooming, or switching schemes marks
// the view dirty; each subsequent [Renderer.Render] call computes one
// refinement pass, starting from a coarse strided approximation and
// halving the stride until the image reaches full resolution.
//
// # Quick Start
//
//	r, err := fractal.New(800, 600,
//	    fractal.WithMaxIterations(200),
//	    fractal.WithScheme(fractal.SchemeRainbow),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for r.Scanning() {
//	    r.Render()
//	    present(r.Framebuffer().Data()) // hand RGBA bytes to a surface
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Region, Scheme, Framebuffer
//   - Pure kernels: Escape (escape-time evaluation), Scheme.Map
//     (iteration count to RGB)
//   - Internal: parallel (fork-join worker pool over row bands)
//
// Pixel evaluation is embarrassingly parallel: each render pass splits
// the target into disjoint row bands and distributes them across a
// worker pool sized to GOMAXPROCS. Workers write only their own rows,
// so passes need no synchronization beyond the final join.
//
// Presentation and input are deliberately out of scope; cmd/fractal
// ships an SDL2 reference viewer that drives the renderer from a
// keyboard/mouse event loop.
//
// By default the package produces no log output. Call [SetLogger] to
// enable diagnostics.
package fractal
