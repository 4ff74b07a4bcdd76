package fractal

import (
	"fmt"
	"time"

	"github.com/gogpu/fractal/internal/parallel"
)

// bandsPerWorker oversubscribes the row-band partition relative to the
// worker count. Escape cost varies sharply between bands that cross the
// set interior and bands that do not; smaller bands keep the slow ones
// from serializing the join.
const bandsPerWorker = 4

// Renderer owns the full rendering state: the viewport region, the
// iteration budget, the active color scheme, the progressive refinement
// sequence, and the framebuffer the passes fill.
//
// Thread safety: Renderer is NOT safe for concurrent use. Mutators and
// Render must be called from a single control goroutine; Render
// parallelizes internally and returns only after all workers have
// joined, so state is never observed mid-pass.
type Renderer struct {
	fb      *Framebuffer
	region  Region
	maxIter int
	scheme  Scheme

	progressive bool
	refine      refinement
	dirty       bool

	pool *parallel.Pool
}

// New creates a Renderer for a width x height target. Invalid
// configuration (non-positive dimensions, budget, or stride, or a
// degenerate region) is fatal: New returns an error and no Renderer.
//
// The caller should Close the renderer to release its worker pool.
func New(width, height int, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb, err := NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	if err := o.region.Validate(); err != nil {
		return nil, err
	}
	if o.maxIterations < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, o.maxIterations)
	}
	if o.initialStride < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStride, o.initialStride)
	}
	if !o.scheme.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, int(o.scheme))
	}

	r := &Renderer{
		fb:          fb,
		region:      o.region,
		maxIter:     o.maxIterations,
		scheme:      o.scheme,
		progressive: o.progressive,
		refine:      refinement{initialStride: o.initialStride},
		dirty:       true,
		pool:        parallel.New(o.workers),
	}

	Logger().Info("renderer created",
		"width", width, "height", height,
		"maxIterations", r.maxIter,
		"scheme", r.scheme.String(),
		"progressive", r.progressive,
		"workers", r.pool.Workers())

	return r, nil
}

// Close releases the renderer's worker pool.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Framebuffer returns the render target. Its Data slice is valid until
// the next Resize and is overwritten by each Render call.
func (r *Renderer) Framebuffer() *Framebuffer { return r.fb }

// Region returns the current viewport.
func (r *Renderer) Region() Region { return r.region }

// Scheme returns the active color scheme.
func (r *Renderer) Scheme() Scheme { return r.scheme }

// MaxIterations returns the escape-time budget.
func (r *Renderer) MaxIterations() int { return r.maxIter }

// ScanLevel returns the index of the next refinement pass. It is zero
// after any mutation and increments per completed progressive pass.
func (r *Renderer) ScanLevel() int { return r.refine.scanLevel }

// invalidate restarts refinement after a state mutation.
func (r *Renderer) invalidate() {
	r.refine.reset()
	r.dirty = true
}

// Pan shifts the viewport by (dx, dy) pan units; see [Region.Pan].
func (r *Renderer) Pan(dx, dy float64) {
	r.region = r.region.Pan(dx, dy)
	r.invalidate()
}

// Zoom scales the viewport about its center; see [Region.Zoom].
func (r *Renderer) Zoom(in bool) {
	r.region = r.region.Zoom(in)
	r.invalidate()
}

// SetScheme switches the color scheme.
func (r *Renderer) SetScheme(s Scheme) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownScheme, int(s))
	}
	r.scheme = s
	r.invalidate()
	return nil
}

// SetMaxIterations replaces the iteration budget.
func (r *Renderer) SetMaxIterations(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, n)
	}
	r.maxIter = n
	r.invalidate()
	return nil
}

// SetRegion jumps the viewport to a new region.
func (r *Renderer) SetRegion(reg Region) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	r.region = reg
	r.invalidate()
	return nil
}

// Resize changes the target dimensions, reallocating the framebuffer
// only when they actually change.
func (r *Renderer) Resize(width, height int) error {
	if width == r.fb.Width() && height == r.fb.Height() {
		return nil
	}
	if err := r.fb.resize(width, height); err != nil {
		return err
	}
	Logger().Info("renderer resized", "width", width, "height", height)
	r.invalidate()
	return nil
}

// Scanning reports whether another Render call would do work: in
// progressive mode, whether refinement passes remain; otherwise,
// whether the view changed since the last full render.
func (r *Renderer) Scanning() bool {
	if !r.progressive {
		return r.dirty
	}
	return r.refine.scanning()
}

// Render computes the next pass into the framebuffer and reports
// whether further passes remain. In progressive mode each call renders
// one stride level, coarsest first; once full resolution is reached,
// calls are no-ops until the next mutation. With progressive rendering
// disabled, every call computes the full image.
func (r *Renderer) Render() bool {
	if !r.progressive {
		r.renderFull()
		r.dirty = false
		return false
	}

	if !r.refine.scanning() {
		return false
	}

	if stride := r.refine.stride(); stride > 1 {
		r.renderStrided(stride)
	} else {
		r.renderFull()
	}
	r.refine.advance()
	r.dirty = r.refine.scanning()
	return r.dirty
}

// renderFull evaluates every pixel. Rows are split into contiguous
// bands, one closure per band; each band writes only its own rows.
func (r *Renderer) renderFull() {
	var (
		w, h    = r.fb.Width(), r.fb.Height()
		reg     = r.region
		maxIter = r.maxIter
		scheme  = r.scheme
		start   = time.Now()
	)

	rowsPerBand := bandHeight(h, r.pool.Workers())
	work := make([]func(), 0, bandCount(h, rowsPerBand))
	for y0 := 0; y0 < h; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, h)
		band := func(y0, y1 int) func() {
			return func() {
				for y := y0; y < y1; y++ {
					row := r.fb.row(y)
					for x := 0; x < w; x++ {
						cr, ci := reg.sample(x, y, w, h)
						c := scheme.Map(Escape(cr, ci, maxIter), maxIter)
						i := x * 4
						row[i+0] = c.R
						row[i+1] = c.G
						row[i+2] = c.B
						row[i+3] = 255
					}
				}
			}
		}(y0, y1)
		work = append(work, band)
	}

	r.pool.ExecuteAll(work)

	Logger().Debug("full pass",
		"bands", len(work),
		"elapsed", time.Since(start))
}

// renderStrided evaluates only pixels whose coordinates are multiples
// of stride on both axes and replicates each sample across its
// stride x stride block. Blocks from different sample rows cover
// disjoint pixel rows, so bands of sample rows write disjoint memory.
func (r *Renderer) renderStrided(stride int) {
	var (
		w, h    = r.fb.Width(), r.fb.Height()
		reg     = r.region
		maxIter = r.maxIter
		scheme  = r.scheme
		start   = time.Now()
	)

	sampleRows := (h + stride - 1) / stride
	rowsPerBand := bandHeight(sampleRows, r.pool.Workers())

	work := make([]func(), 0, bandCount(sampleRows, rowsPerBand))
	for s0 := 0; s0 < sampleRows; s0 += rowsPerBand {
		s1 := min(s0+rowsPerBand, sampleRows)
		band := func(s0, s1 int) func() {
			return func() {
				for s := s0; s < s1; s++ {
					y := s * stride
					for x := 0; x < w; x += stride {
						cr, ci := reg.sample(x, y, w, h)
						c := scheme.Map(Escape(cr, ci, maxIter), maxIter)
						r.fb.FillBlock(x, y, stride, c)
					}
				}
			}
		}(s0, s1)
		work = append(work, band)
	}

	r.pool.ExecuteAll(work)

	Logger().Debug("strided pass",
		"stride", stride,
		"bands", len(work),
		"elapsed", time.Since(start))
}

// bandHeight returns the rows per band for a target of height h,
// oversubscribed by bandsPerWorker relative to the worker count.
// Always at least 1; the last band absorbs the remainder.
func bandHeight(h, workers int) int {
	per := h / (workers * bandsPerWorker)
	if per < 1 {
		per = 1
	}
	return per
}

// bandCount returns the number of bands of rowsPerBand rows covering h
// rows, for preallocation.
func bandCount(h, rowsPerBand int) int {
	return (h + rowsPerBand - 1) / rowsPerBand
}
