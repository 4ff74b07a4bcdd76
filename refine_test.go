package fractal

import "testing"

// TestRefinement_StrideSequence verifies the stride halves per level
// until exhaustion: 8 -> 4 -> 2 -> 1 -> done.
func TestRefinement_StrideSequence(t *testing.T) {
	r := refinement{initialStride: 8}

	want := []int{8, 4, 2, 1}
	for i, w := range want {
		if !r.scanning() {
			t.Fatalf("scanning() = false at level %d, want true", i)
		}
		if got := r.stride(); got != w {
			t.Errorf("stride at level %d = %d, want %d", i, got, w)
		}
		r.advance()
	}

	if r.scanning() {
		t.Errorf("scanning() = true after %d passes, want false", len(want))
	}
	if r.stride() >= 1 {
		t.Errorf("stride after exhaustion = %d, want < 1", r.stride())
	}
}

// TestRefinement_Reset verifies reset restarts from the coarsest level.
func TestRefinement_Reset(t *testing.T) {
	r := refinement{initialStride: 4}
	r.advance()
	r.advance()
	r.reset()

	if r.scanLevel != 0 {
		t.Errorf("scanLevel after reset = %d, want 0", r.scanLevel)
	}
	if got := r.stride(); got != 4 {
		t.Errorf("stride after reset = %d, want 4", got)
	}
}

// TestRefinement_StrideOne verifies an initial stride of 1 yields a
// single full-resolution pass.
func TestRefinement_StrideOne(t *testing.T) {
	r := refinement{initialStride: 1}
	if !r.scanning() || r.stride() != 1 {
		t.Fatalf("fresh stride-1 state: scanning=%v stride=%d", r.scanning(), r.stride())
	}
	r.advance()
	if r.scanning() {
		t.Error("scanning() = true after the only pass, want false")
	}
}

// TestRefinement_NonPowerOfTwoStride verifies right-shift refinement on
// a stride that is not a power of two (6 -> 3 -> 1 -> done).
func TestRefinement_NonPowerOfTwoStride(t *testing.T) {
	r := refinement{initialStride: 6}
	var got []int
	for r.scanning() {
		got = append(got, r.stride())
		r.advance()
	}
	want := []int{6, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("stride sequence %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stride sequence %v, want %v", got, want)
		}
	}
}
