package fractal

// Classic landmark regions of the Mandelbrot set, usable as startup
// viewports via [WithRegion] or by name via [LookupRegion].
var (
	// FullSet frames the entire set with a margin.
	FullSet = Region{XMin: -2.5, XMax: 1.5, YMin: -1.5, YMax: 1.5}

	// SeahorseValley: dense filaments and repeating seahorse curls.
	SeahorseValley = Region{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// ElephantValley: large bulb with trunk-like tendrils.
	ElephantValley = Region{XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02}

	// SpiralMinibrot: small Mandelbrot copy with tight spiral arms.
	SpiralMinibrot = Region{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}

	// TripleSpiral: threefold symmetric spiral structure.
	TripleSpiral = Region{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}
)

// namedRegions maps configuration names to landmark regions.
var namedRegions = map[string]Region{
	"full":            FullSet,
	"seahorse-valley": SeahorseValley,
	"elephant-valley": ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
}

// LookupRegion resolves a landmark name to its region.
func LookupRegion(name string) (Region, bool) {
	r, ok := namedRegions[name]
	return r, ok
}
