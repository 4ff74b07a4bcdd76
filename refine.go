package fractal

// refinement tracks progressive-rendering state: which pass of the
// coarse-to-fine stride sequence comes next. The stride at scan level n
// is initialStride >> n; once it reaches zero the image is at full
// resolution and no further passes are needed until the view changes.
//
// refinement is owned by the renderer's single-threaded control path
// and is never touched during a parallel pass.
type refinement struct {
	initialStride int
	scanLevel     int
}

// stride returns the sampling interval for the current scan level.
// A stride of 1 is a full-resolution pass; below 1 the sequence is
// exhausted.
func (r *refinement) stride() int {
	return r.initialStride >> r.scanLevel
}

// scanning reports whether any pass remains before full resolution.
func (r *refinement) scanning() bool {
	return r.stride() >= 1
}

// reset restarts the sequence from the coarsest stride. Called on every
// region, budget, scheme, or target mutation.
func (r *refinement) reset() {
	r.scanLevel = 0
}

// advance records a completed pass at the current level.
func (r *refinement) advance() {
	r.scanLevel++
}
