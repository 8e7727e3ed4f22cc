package brent

import (
	"errors"
	"math"

	"github.com/jgamble/Math-Brent/common"
)

const (
	// cgold is the golden-section fraction by which the larger
	// sub-interval is reduced on a fallback step.
	cgold = 2 - math.Phi

	// zeps is the absolute floor on the convergence tolerance,
	// protecting against a minimum at exactly zero.
	zeps = 1e-10
)

// Brent narrows a bracketing triplet around a minimum using parabolic
// interpolation steps where they can be trusted and golden-section steps
// otherwise. One function evaluation is performed per iteration.
// Will find the minimum certified by the triplet, to within the
// fractional precision Tol.
type Brent struct {
	Tol float64 // Fractional precision target

	f Objective

	// Alive search interval. The best point always lies inside it.
	a, b float64

	// Best, second-best, and third-best points seen so far.
	x, w, v    float64
	fx, fw, fv float64

	// Most recent step, and the step taken two iterations ago. The
	// latter decides whether a parabolic step may be attempted.
	d, e float64
}

func NewBrent(tol float64) *Brent {
	return &Brent{Tol: tol}
}

// Init sets up the refinement from a bracketing triplet: bx strictly
// between ax and cx, with f(bx) no greater than f(ax) or f(cx). initObj
// is the value of f at bx. The triplet is a documented precondition and
// is not validated.
func (br *Brent) Init(f Objective, ax, bx, cx, initObj float64) error {
	if br.Tol < 0 {
		return errors.New("brent: tolerance is negative")
	}
	if br.Tol == 0 {
		br.Tol = DefaultRefineTol
	}
	br.f = f

	br.a = math.Min(ax, cx)
	br.b = math.Max(ax, cx)

	br.x, br.w, br.v = bx, bx, bx
	br.fx, br.fw, br.fv = initObj, initObj, initObj

	br.d = 0
	br.e = 0
	return nil
}

// Status reports BoundsConverged once the best point is within the
// tolerance-adjusted interval width of the interval midpoint.
func (br *Brent) Status() common.Status {
	xm := 0.5 * (br.a + br.b)
	tol2 := 2 * (br.Tol*math.Abs(br.x) + zeps)
	if math.Abs(br.x-xm) <= tol2-0.5*(br.b-br.a) {
		return common.BoundsConverged
	}
	return common.Continue
}

func (br *Brent) Iterate() (loc, obj float64, nFunEvals int, err error) {
	xm := 0.5 * (br.a + br.b)
	tol1 := br.Tol*math.Abs(br.x) + zeps
	tol2 := 2 * tol1

	// Select the trial step d: a parabolic step through x, w, v when it
	// can be trusted, and a golden-section step into the larger
	// sub-interval otherwise.
	var d float64
	golden := true
	if math.Abs(br.e) > tol1 {
		r := (br.x - br.w) * (br.fx - br.fv)
		q := (br.x - br.v) * (br.fx - br.fw)
		p := (br.x-br.v)*q - (br.x-br.w)*r
		q = 2 * (q - r)
		if q > 0 {
			p = -p
		}
		q = math.Abs(q)
		etemp := br.e
		br.e = br.d
		// The parabolic step must stay strictly within the bracket and
		// be smaller than half the step taken two iterations ago.
		if math.Abs(p) < math.Abs(0.5*q*etemp) && p > q*(br.a-br.x) && p < q*(br.b-br.x) {
			d = p / q
			u := br.x + d
			if u-br.a < tol2 || br.b-u < tol2 {
				d = math.Copysign(tol1, xm-br.x)
			}
			golden = false
		}
	}
	if golden {
		if br.x >= xm {
			br.e = br.a - br.x
		} else {
			br.e = br.b - br.x
		}
		d = cgold * br.e
	}
	br.d = d

	// Never evaluate within tol1 of the current best point.
	var u float64
	if math.Abs(d) >= tol1 {
		u = br.x + d
	} else {
		u = br.x + math.Copysign(tol1, d)
	}
	fu := br.f.Obj(u)

	if fu <= br.fx {
		// New best point. Shrink the bracket on the side it came from
		// and demote the old best.
		if u >= br.x {
			br.a = br.x
		} else {
			br.b = br.x
		}
		br.v, br.fv = br.w, br.fw
		br.w, br.fw = br.x, br.fx
		br.x, br.fx = u, fu
	} else {
		// Shrink the bracket on the side of the trial point.
		if u < br.x {
			br.a = u
		} else {
			br.b = u
		}
		if fu <= br.fw || br.w == br.x {
			br.v, br.fv = br.w, br.fw
			br.w, br.fw = u, fu
		} else if fu <= br.fv || br.v == br.x || br.v == br.w {
			br.v, br.fv = u, fu
		}
	}
	return u, fu, 1, nil
}

// Best returns the lowest point found so far and its function value.
func (br *Brent) Best() (loc, obj float64) {
	return br.x, br.fx
}

func (br *Brent) Result() {}
