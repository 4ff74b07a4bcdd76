package fractal

import "testing"

// TestMap_InsideColorIsBlackForAllSchemes verifies the shared interior
// color: iter == maxIter maps to black in every scheme.
func TestMap_InsideColorIsBlackForAllSchemes(t *testing.T) {
	for _, s := range Schemes() {
		for _, budget := range []int{1, 100, 255} {
			if got := s.Map(budget, budget); got != (RGB{}) {
				t.Errorf("%s.Map(%d, %d) = %+v, want black", s, budget, budget, got)
			}
		}
	}
}

// TestMap_AllSchemesAllCounts sweeps every escaping count under a fixed
// budget through every scheme. Nothing should panic and the inside
// color must only appear where the scheme legitimately produces it
// (stripes and moire bands may hit pure black; Smooth's low endpoint
// never does).
func TestMap_AllSchemesAllCounts(t *testing.T) {
	const budget = 100
	for _, s := range Schemes() {
		for iter := 0; iter < budget; iter++ {
			s.Map(iter, budget) // must not panic, including iter == 0
		}
	}
}

// TestMap_SingleChannelGradients verifies the red, blue, and
// green-gradient curves scale exactly one channel by t*255.
func TestMap_SingleChannelGradients(t *testing.T) {
	const budget = 200
	for iter := 0; iter < budget; iter += 7 {
		v := uint8(float64(iter) / budget * 255)

		if got := SchemeRed.Map(iter, budget); got != (RGB{R: v}) {
			t.Errorf("red.Map(%d, %d) = %+v, want {R:%d}", iter, budget, got, v)
		}
		if got := SchemeBlue.Map(iter, budget); got != (RGB{B: v}) {
			t.Errorf("blue.Map(%d, %d) = %+v, want {B:%d}", iter, budget, got, v)
		}
		if got := SchemeGreenGradient.Map(iter, budget); got != (RGB{G: v}) {
			t.Errorf("green-gradient.Map(%d, %d) = %+v, want {G:%d}", iter, budget, got, v)
		}
	}
}

// TestMap_BlackAndWhiteIsGray verifies the grayscale curve sets all
// three channels to the same value.
func TestMap_BlackAndWhiteIsGray(t *testing.T) {
	const budget = 128
	for iter := 0; iter < budget; iter++ {
		got := SchemeBlackAndWhite.Map(iter, budget)
		if got.R != got.G || got.G != got.B {
			t.Errorf("black-and-white.Map(%d, %d) = %+v, want equal channels", iter, budget, got)
		}
		if want := uint8(float64(iter) / budget * 255); got.R != want {
			t.Errorf("black-and-white.Map(%d, %d).R = %d, want %d", iter, budget, got.R, want)
		}
	}
}

// TestMap_ZebraStripes verifies the ten-stripe parity pattern: counts
// in even stripes are white, odd stripes black.
func TestMap_ZebraStripes(t *testing.T) {
	const budget = 100 // stripes of 10 counts each
	white := RGB{R: 255, G: 255, B: 255}

	cases := []struct {
		iter int
		want RGB
	}{
		{0, white},  // stripe 0
		{9, white},  // stripe 0 upper edge
		{10, RGB{}}, // stripe 1
		{19, RGB{}}, // stripe 1 upper edge
		{20, white}, // stripe 2
		{95, RGB{}}, // stripe 9
	}
	for _, c := range cases {
		if got := SchemeZebra.Map(c.iter, budget); got != c.want {
			t.Errorf("zebra.Map(%d, %d) = %+v, want %+v", c.iter, budget, got, c.want)
		}
	}
}

// TestMap_RainbowSegments probes one count inside each of the six hue
// segments and checks the channel that must be saturated there.
func TestMap_RainbowSegments(t *testing.T) {
	const budget = 60 // 10 counts per segment
	cases := []struct {
		iter    int
		channel string
		get     func(RGB) uint8
	}{
		{5, "R", func(c RGB) uint8 { return c.R }},  // segment 0: red pinned
		{15, "G", func(c RGB) uint8 { return c.G }}, // segment 1: green pinned
		{25, "G", func(c RGB) uint8 { return c.G }}, // segment 2: green pinned
		{35, "B", func(c RGB) uint8 { return c.B }}, // segment 3: blue pinned
		{45, "B", func(c RGB) uint8 { return c.B }}, // segment 4: blue pinned
		{55, "R", func(c RGB) uint8 { return c.R }}, // segment 5: red pinned
	}
	for _, c := range cases {
		got := SchemeRainbow.Map(c.iter, budget)
		if c.get(got) != 255 {
			t.Errorf("rainbow.Map(%d, %d) = %+v, want channel %s = 255", c.iter, budget, got, c.channel)
		}
	}
}

// TestMap_SmoothBlendsEndpoints verifies the smooth scheme stays on the
// line between its two endpoints for every escaping count.
func TestMap_SmoothBlendsEndpoints(t *testing.T) {
	const budget = 256
	within := func(v, lo, hi uint8) bool {
		if lo > hi {
			lo, hi = hi, lo
		}
		return v >= lo && v <= hi
	}
	for iter := 0; iter < budget; iter++ {
		got := SchemeSmooth.Map(iter, budget)
		if !within(got.R, smoothLow.R, smoothHigh.R) ||
			!within(got.G, smoothLow.G, smoothHigh.G) ||
			!within(got.B, smoothLow.B, smoothHigh.B) {
			t.Errorf("smooth.Map(%d, %d) = %+v, outside endpoint range", iter, budget, got)
		}
	}
}

// TestMap_MoireSchemesDiffer verifies psychedelic and electric use
// distinct multipliers: their outputs must disagree somewhere.
func TestMap_MoireSchemesDiffer(t *testing.T) {
	const budget = 100
	for iter := 1; iter < budget; iter++ {
		if SchemePsychedelic.Map(iter, budget) != SchemeElectric.Map(iter, budget) {
			return
		}
	}
	t.Error("psychedelic and electric produced identical output for every count")
}

// TestParseScheme_RoundTrip verifies every scheme name parses back to
// the same scheme.
func TestParseScheme_RoundTrip(t *testing.T) {
	for _, s := range Schemes() {
		got, err := ParseScheme(s.String())
		if err != nil {
			t.Fatalf("ParseScheme(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseScheme(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

// TestParseScheme_Unknown verifies unknown names are rejected.
func TestParseScheme_Unknown(t *testing.T) {
	if _, err := ParseScheme("plasma"); err == nil {
		t.Error("ParseScheme(\"plasma\") succeeded, want error")
	}
}
