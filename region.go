package fractal

import "fmt"

// Transform tuning constants. Pan distance is a fraction of the visible
// extent, so both operations behave identically at every zoom depth.
const (
	// zoomStep is the multiplicative factor applied to the region's
	// half-extents per zoom-in step; zoom-out applies the reciprocal.
	zoomStep = 0.9

	// panStep is the fraction of the current extent moved per unit of
	// pan input.
	panStep = 0.1

	// maxExtent bounds the region's width and height. Zoom-out steps
	// that would exceed it are rejected, which also makes an inverted
	// region unreachable.
	maxExtent = 8.0
)

// Region is an axis-aligned rectangle of the complex plane mapped onto
// the pixel grid. X spans the real axis, Y the imaginary axis; YMin is
// the top edge (imaginary grows downward with pixel rows).
//
// A valid Region has strictly positive extent on both axes.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultRegion is the startup viewport: a seahorse-valley detail on
// the boundary of the Mandelbrot set.
func DefaultRegion() Region {
	return Region{XMin: -1.20, XMax: -1.00, YMin: 0.20, YMax: 0.35}
}

// Validate reports whether the region has positive extent on both axes.
func (r Region) Validate() error {
	if r.XMax <= r.XMin || r.YMax <= r.YMin {
		return fmt.Errorf("%w: x=[%g,%g] y=[%g,%g]", ErrInvalidRegion, r.XMin, r.XMax, r.YMin, r.YMax)
	}
	return nil
}

// Width returns the real-axis extent.
func (r Region) Width() float64 { return r.XMax - r.XMin }

// Height returns the imaginary-axis extent.
func (r Region) Height() float64 { return r.YMax - r.YMin }

// Center returns the midpoint of the region.
func (r Region) Center() (x, y float64) {
	return (r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2
}

// Zoom scales the region about its center by a fixed factor: zoomStep
// when zooming in, its reciprocal when zooming out. A zoom-out that
// would push either extent past maxExtent returns the region unchanged.
func (r Region) Zoom(in bool) Region {
	factor := zoomStep
	if !in {
		factor = 1 / zoomStep
		if r.Width()*factor > maxExtent || r.Height()*factor > maxExtent {
			return r
		}
	}

	cx, cy := r.Center()
	hx := r.Width() / 2 * factor
	hy := r.Height() / 2 * factor

	return Region{
		XMin: cx - hx,
		XMax: cx + hx,
		YMin: cy - hy,
		YMax: cy + hy,
	}
}

// Pan shifts the region by (dx, dy) units of pan input. One unit moves
// the center by panStep of the current extent on that axis, so pan
// speed is invariant under zoom.
func (r Region) Pan(dx, dy float64) Region {
	sx := dx * r.Width() * panStep
	sy := dy * r.Height() * panStep

	return Region{
		XMin: r.XMin + sx,
		XMax: r.XMax + sx,
		YMin: r.YMin + sy,
		YMax: r.YMax + sy,
	}
}

// sample maps a pixel coordinate to its complex-plane sample point by
// linear interpolation across the region. px/py are in [0, w) x [0, h).
func (r Region) sample(px, py, w, h int) (cr, ci float64) {
	cr = r.XMin + float64(px)/float64(w)*r.Width()
	ci = r.YMin + float64(py)/float64(h)*r.Height()
	return cr, ci
}
