package fractal

import (
	"fmt"
	"math"
)

// RGB is an 8-bit color triple. The framebuffer stores a fixed alpha of
// 255, so schemes only produce the color channels.
type RGB struct {
	R, G, B uint8
}

// Scheme selects one of the fixed color-mapping strategies. A Scheme is
// a pure selector; it owns no state.
type Scheme int

// The closed set of color schemes.
const (
	SchemeSmooth Scheme = iota
	SchemeZebra
	SchemeRed
	SchemeBlue
	SchemeGreenGradient
	SchemeBlackAndWhite
	SchemeRainbow
	SchemePsychedelic
	SchemeElectric

	numSchemes
)

var schemeNames = [...]string{
	SchemeSmooth:        "smooth",
	SchemeZebra:         "zebra",
	SchemeRed:           "red",
	SchemeBlue:          "blue",
	SchemeGreenGradient: "green-gradient",
	SchemeBlackAndWhite: "black-and-white",
	SchemeRainbow:       "rainbow",
	SchemePsychedelic:   "psychedelic",
	SchemeElectric:      "electric",
}

// String returns the scheme's configuration name.
func (s Scheme) String() string {
	if s < 0 || s >= numSchemes {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// Valid reports whether s names a known scheme.
func (s Scheme) Valid() bool { return s >= 0 && s < numSchemes }

// ParseScheme resolves a configuration name to its Scheme.
func ParseScheme(name string) (Scheme, error) {
	for s, n := range schemeNames {
		if n == name {
			return Scheme(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Schemes returns all schemes in selection order.
func Schemes() []Scheme {
	all := make([]Scheme, numSchemes)
	for i := range all {
		all[i] = Scheme(i)
	}
	return all
}

// inside is the color shared by all schemes for points that never
// escape within the iteration budget.
var inside = RGB{}

// Smooth gradient endpoints: deep blue into warm orange, the classic
// Mandelbrot exterior palette.
var (
	smoothLow  = RGB{R: 25, G: 7, B: 26}
	smoothHigh = RGB{R: 255, G: 170, B: 0}
)

// Per-channel band multipliers for the moire schemes. The values are
// aesthetic, not semantic; coprime multipliers keep the bands drifting
// against each other instead of locking into a shared period.
var (
	psychedelicMul = [3]float64{5, 7, 11}
	electricMul    = [3]float64{2, 3, 13}
)

// zebraStripes is the number of equal iteration bands in the zebra
// scheme.
const zebraStripes = 10

// Map converts an escape-time result into a color. iter is the value
// returned by [Escape] for the same budget maxIter. Every scheme maps
// iter == maxIter (still bounded, inside the set) to black; all other
// counts are normalized to t = iter/maxIter in [0, 1) and pushed
// through the scheme's curve. Channels are truncated to 0-255; there is
// no dithering or gamma correction.
//
// Map is pure and safe for concurrent use.
func (s Scheme) Map(iter, maxIter int) RGB {
	if iter >= maxIter {
		return inside
	}

	t := float64(iter) / float64(maxIter)

	switch s {
	case SchemeSmooth:
		return lerpRGB(smoothLow, smoothHigh, logBlend(iter, maxIter))

	case SchemeZebra:
		if iter*zebraStripes/maxIter%2 == 0 {
			return RGB{R: 255, G: 255, B: 255}
		}
		return RGB{}

	case SchemeRed:
		return RGB{R: uint8(t * 255)}

	case SchemeBlue:
		return RGB{B: uint8(t * 255)}

	case SchemeGreenGradient:
		return RGB{G: uint8(t * 255)}

	case SchemeBlackAndWhite:
		v := uint8(t * 255)
		return RGB{R: v, G: v, B: v}

	case SchemeRainbow:
		return hueWheel(t)

	case SchemePsychedelic:
		return moire(t, psychedelicMul)

	case SchemeElectric:
		return moire(t, electricMul)
	}

	return inside
}

// logBlend computes the fractional part of log2(iter)/log2(maxIter),
// the blend weight for the smooth scheme. Counts below 1 have no
// logarithm; they blend fully toward the low endpoint.
func logBlend(iter, maxIter int) float64 {
	if iter < 1 || maxIter <= 1 {
		return 0
	}
	w := math.Log2(float64(iter)) / math.Log2(float64(maxIter))
	return w - math.Floor(w)
}

// lerpRGB interpolates each channel of a toward b by weight t in [0, 1].
func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
	}
}

// hueWheel maps t in [0, 1) onto the six-segment piecewise-linear HSV
// hue wheel at full saturation and value. Each segment spans 60 degrees
// of hue; within a segment one channel ramps while the others are
// pinned at 0 or 255.
func hueWheel(t float64) RGB {
	seg := t * 6
	x := uint8(255 * (1 - math.Abs(math.Mod(seg, 2)-1)))

	switch int(seg) {
	case 0:
		return RGB{R: 255, G: x}
	case 1:
		return RGB{R: x, G: 255}
	case 2:
		return RGB{G: 255, B: x}
	case 3:
		return RGB{G: x, B: 255}
	case 4:
		return RGB{R: x, B: 255}
	default:
		return RGB{R: 255, B: x}
	}
}

// moire scales t by 255 and a per-channel multiplier, wrapping each
// channel mod 256 to produce repeating bands.
func moire(t float64, mul [3]float64) RGB {
	return RGB{
		R: uint8(math.Mod(t*255*mul[0], 256)),
		G: uint8(math.Mod(t*255*mul[1], 256)),
		B: uint8(math.Mod(t*255*mul[2], 256)),
	}
}
