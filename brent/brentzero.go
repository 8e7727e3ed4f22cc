package brent

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jgamble/Math-Brent/common"
)

// eps is the double-precision machine epsilon.
var eps = math.Nextafter(1, 2) - 1

// BrentZero finds a root of a function on an interval whose endpoints
// straddle a sign change, combining bisection, secant steps, and inverse
// quadratic interpolation. The sign change guarantees the bracket never
// loses the root; the interpolation steps give superlinear convergence
// when the function is locally well-behaved. One function evaluation is
// performed per iteration.
type BrentZero struct {
	Tol float64 // Precision target on the root location

	f Objective

	// b is the current best estimate of the root, a the previous
	// estimate, and c an older point chosen so that the root lies
	// between b and c.
	a, b, c    float64
	fa, fb, fc float64

	d, e float64
}

func NewBrentZero(tol float64) *BrentZero {
	return &BrentZero{Tol: tol}
}

// Init evaluates the function at the interval endpoints and verifies
// they straddle a sign change.
func (z *BrentZero) Init(f Objective, ax, bx float64) error {
	if z.Tol < 0 {
		return errors.New("brentzero: tolerance is negative")
	}
	if z.Tol == 0 {
		z.Tol = DefaultZeroTol
	}
	z.f = f

	z.a, z.b = ax, bx
	z.fa = f.Obj(ax)
	z.fb = f.Obj(bx)
	if (z.fa > 0 && z.fb > 0) || (z.fa < 0 && z.fb < 0) {
		return errors.New("brentzero: root is not bracketed by the interval")
	}
	z.c, z.fc = z.b, z.fb
	z.adjust()
	return nil
}

// adjust restores the bracketing arrangement after an evaluation: the
// root lies between b and c, and b is the endpoint with the smaller
// function magnitude.
func (z *BrentZero) adjust() {
	if (z.fb > 0 && z.fc > 0) || (z.fb < 0 && z.fc < 0) {
		z.c, z.fc = z.a, z.fa
		z.d = z.b - z.a
		z.e = z.d
	}
	if math.Abs(z.fc) < math.Abs(z.fb) {
		z.a, z.b, z.c = z.b, z.c, z.b
		z.fa, z.fb, z.fc = z.fb, z.fc, z.fb
	}
}

func (z *BrentZero) tol1() float64 {
	return 2*eps*math.Abs(z.b) + 0.5*z.Tol
}

// Status reports RootConverged when the bracket has collapsed to the
// working precision or an exact zero has been hit.
func (z *BrentZero) Status() common.Status {
	if z.fb == 0 {
		return common.RootConverged
	}
	if scalar.EqualWithinAbs(z.b, z.c, 2*z.tol1()) {
		return common.RootConverged
	}
	return common.Continue
}

func (z *BrentZero) Iterate() (loc, obj float64, nFunEvals int, err error) {
	tol1 := z.tol1()
	xm := 0.5 * (z.c - z.b)

	if math.Abs(z.e) >= tol1 && math.Abs(z.fa) > math.Abs(z.fb) {
		// Attempt inverse quadratic interpolation, or a secant step
		// when only two distinct points are available.
		s := z.fb / z.fa
		var p, q float64
		if z.a == z.c {
			p = 2 * xm * s
			q = 1 - s
		} else {
			q = z.fa / z.fc
			r := z.fb / z.fc
			p = s * (2*xm*q*(q-r) - (z.b-z.a)*(r-1))
			q = (q - 1) * (r - 1) * (s - 1)
		}
		if p > 0 {
			q = -q
		}
		p = math.Abs(p)
		min1 := 3*xm*q - math.Abs(tol1*q)
		min2 := math.Abs(z.e * q)
		if 2*p < math.Min(min1, min2) {
			// Interpolation acceptable.
			z.e = z.d
			z.d = p / q
		} else {
			// Interpolation failed its bounds; bisect.
			z.d = xm
			z.e = z.d
		}
	} else {
		// Bracket shrinking too slowly; bisect.
		z.d = xm
		z.e = z.d
	}

	z.a, z.fa = z.b, z.fb
	if math.Abs(z.d) > tol1 {
		z.b += z.d
	} else {
		z.b += math.Copysign(tol1, xm)
	}
	z.fb = z.f.Obj(z.b)
	z.adjust()
	return z.b, z.fb, 1, nil
}

// Best returns the current root estimate and its function value.
func (z *BrentZero) Best() (loc, obj float64) {
	return z.b, z.fb
}

func (z *BrentZero) Result() {}
