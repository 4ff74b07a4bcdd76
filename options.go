package fractal

// Option configures a Renderer during creation.
//
// Example:
//
//	// Defaults: seahorse-valley region, 200 iterations, progressive
//	r, err := fractal.New(800, 600)
//
//	// Full-resolution-only rendering with a custom palette
//	r, err := fractal.New(800, 600,
//	    fractal.WithScheme(fractal.SchemeElectric),
//	    fractal.WithProgressive(false),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	region        Region
	maxIterations int
	scheme        Scheme
	progressive   bool
	initialStride int
	workers       int
}

// defaultOptions returns the defaults applied before user options.
func defaultOptions() options {
	return options{
		region:        DefaultRegion(),
		maxIterations: 200,
		scheme:        SchemeBlackAndWhite,
		progressive:   true,
		initialStride: 8,
		workers:       0, // GOMAXPROCS
	}
}

// WithRegion sets the startup viewport. The region must have positive
// extent on both axes; New fails otherwise.
func WithRegion(r Region) Option {
	return func(o *options) { o.region = r }
}

// WithMaxIterations sets the escape-time iteration budget. Larger
// budgets sharpen detail near the set boundary at proportional cost.
// The budget must be positive; New fails otherwise.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithScheme sets the startup color scheme.
func WithScheme(s Scheme) Option {
	return func(o *options) { o.scheme = s }
}

// WithProgressive enables or disables progressive refinement. When
// disabled, every Render call computes the full-resolution image.
func WithProgressive(enabled bool) Option {
	return func(o *options) { o.progressive = enabled }
}

// WithInitialStride sets the coarsest sampling interval of the
// progressive sequence. Successive passes halve it (by right shift)
// until full resolution. The stride must be positive; New fails
// otherwise.
func WithInitialStride(stride int) Option {
	return func(o *options) { o.initialStride = stride }
}

// WithWorkers sets the number of goroutines filling row bands per pass.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}
