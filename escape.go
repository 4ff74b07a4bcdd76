package fractal

// Escape runs the escape-time iteration z <- z*z + c from z = 0 for the
// sample point c = cr + ci*i, and returns the number of iterations
// completed before |z| exceeds 2, or exactly maxIter if the point is
// still bounded at the budget. A return value equal to maxIter is the
// "inside the set" sentinel; callers must compare against the budget,
// not against a magnitude.
//
// The divergence test uses the squared magnitude (|z|^2 > 4), which is
// equivalent and avoids a square root per iteration.
//
// Escape is pure and safe to call from any number of goroutines.
func Escape(cr, ci float64, maxIter int) int {
	var zr, zi float64
	for n := 0; n < maxIter; n++ {
		zr2 := zr * zr
		zi2 := zi * zi
		if zr2+zi2 > 4 {
			return n
		}
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
	}
	return maxIter
}
