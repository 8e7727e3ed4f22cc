package brent

import "math"

const (
	// gold is the default magnification applied when extending the
	// bracket downhill.
	gold = math.Phi

	// glimit caps how far a single parabolic extrapolation may reach,
	// in units of the current (c - b) spacing.
	glimit = 100.0

	// tiny guards the parabolic-vertex denominator against division
	// by zero.
	tiny = 1e-20
)

// Bracket searches downhill from the two seed points ax and bx until it
// finds a triplet a, b, c with b between a and c and f(b) no greater than
// f(a) or f(c), certifying that a local minimum of f lies in
// [min(a, c), max(a, c)]. The function values at the three points are
// returned along with them.
//
// The seeds must be distinct; the initial search direction is derived
// from their difference. The triplet may be oriented in either direction
// (a < b < c or a > b > c). For a function that decreases monotonically
// in the search direction the loop does not terminate; callers are
// responsible for supplying a function with a minimum in range.
func Bracket(ax, bx float64, f Objective) (a, b, c, fa, fb, fc float64) {
	a, b = ax, bx
	fa = f.Obj(a)
	fb = f.Obj(b)

	// Search in the downhill direction from a to b.
	if fb > fa {
		a, b = b, a
		fa, fb = fb, fa
	}

	c = b + gold*(b-a)
	fc = f.Obj(c)

	for fb >= fc {
		// Vertex of the parabola through (a, fa), (b, fb), (c, fc).
		r := (b - a) * (fb - fc)
		q := (b - c) * (fb - fa)
		qr := q - r
		denom := 2 * math.Copysign(math.Max(math.Abs(qr), tiny), qr)
		u := b - ((b-c)*q-(b-a)*r)/denom
		ulim := b + glimit*(c-b)

		var fu float64
		switch {
		case (b-u)*(u-c) > 0:
			// Parabolic vertex between b and c.
			fu = f.Obj(u)
			if fu < fc {
				// Minimum between b and c.
				a, fa = b, fb
				b, fb = u, fu
				continue
			}
			if fu > fb {
				// Minimum between a and u.
				c, fc = u, fu
				continue
			}
			// Parabolic fit was no use. Magnify past c instead.
			u = c + gold*(c-b)
			fu = f.Obj(u)
		case (c-u)*(u-ulim) > 0:
			// Parabolic vertex between c and the extrapolation limit.
			fu = f.Obj(u)
			if fu < fc {
				// Still going downhill, so take another step beyond.
				b, c = c, u
				fb, fc = fc, fu
				u = c + gold*(c-b)
				fu = f.Obj(u)
			}
		case (u-ulim)*(ulim-c) >= 0:
			// Vertex at or past the limit.
			u = ulim
			fu = f.Obj(u)
		default:
			// Vertex on the wrong side. Magnify past c.
			u = c + gold*(c-b)
			fu = f.Obj(u)
		}

		// Eliminate the oldest point.
		a, b, c = b, c, u
		fa, fb, fc = fb, fc, fu
	}
	return a, b, c, fa, fb, fc
}
