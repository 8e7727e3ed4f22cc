package brent

import (
	"errors"
	"math"

	"github.com/jgamble/Math-Brent/common"
)

// Optimizer is a univariate routine driven one function evaluation at a
// time. Concrete optimizers are seeded through their own Init methods
// before the driver loop runs.
type Optimizer interface {
	Status() common.Status
	// The loc and obj are what are passed to the helper for tolerance
	// checking and display.
	Iterate() (loc float64, obj float64, nFunEvals int, err error)
	// Best returns the answer the optimizer would report if stopped now.
	Best() (loc, obj float64)
	// Result does any cleanup needed
	Result()
}

// run owns the Status-check/Iterate loop shared by the drivers.
// Exhausting the iteration budget is a soft failure: a warning is
// emitted and the best point found is returned, with the status
// recording the non-convergence.
func run(helper *Helper, opt Optimizer, settings *Settings) (*Result, error) {
	var status common.Status
	for {
		status = common.CheckStatus(opt, helper)
		if status != common.Continue {
			break
		}

		loc, obj, nFunEvals, err := opt.Iterate()
		if err != nil {
			return nil, errors.New("error iterating optimizer: " + err.Error())
		}
		helper.Iterate(loc, obj, nFunEvals)
	}

	if status == common.MaximumIterations {
		settings.Warning("exceeded maximum iterations")
	}

	opt.Result()
	loc, obj := opt.Best()
	return &Result{
		CommonResult: helper.Common.Result(status),
		Loc:          loc,
		Obj:          obj,
	}, nil
}

// Refine narrows the bracketing triplet (ax, bx, cx) around a minimum of
// f to the fractional precision settings.Tol (default 1e-8). The triplet
// must satisfy bx strictly between ax and cx with f(bx) no greater than
// f(ax) or f(cx); this is a precondition, not validated. If the
// iteration budget is exhausted before convergence the best point found
// is still returned, with Result.Status set to MaximumIterations.
func Refine(ax, bx, cx float64, f Objective, settings *Settings) (*Result, error) {
	if settings == nil {
		settings = DefaultSettings()
	}

	initObj := settings.InitialObjective
	if math.IsNaN(initObj) {
		initObj = f.Obj(bx)
	}

	b := NewBrent(settings.Tol)
	err := b.Init(f, ax, bx, cx, initObj)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}

	helper := NewHelper()
	helper.Init(settings, f, bx, initObj)
	return run(helper, b, settings)
}

// Minimize finds a local minimum of f near guess. The two seed points
// guess-scale and guess+scale start the bracket search, so scale should
// be on the order of the distance from the guess to the minimum. Once a
// bracketing triplet is found it is refined to the fractional precision
// settings.Tol (default 1e-7).
func Minimize(guess, scale float64, f Objective, settings *Settings) (*Result, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	s := *settings
	if s.Tol == 0 {
		s.Tol = DefaultMinimizeTol
	}
	s.InitialObjective = math.NaN()

	a, b, c, _, _, _ := Bracket(guess-scale, guess+scale, f)
	return Refine(a, b, c, f, &s)
}

// Zero finds a root of f on [ax, bx]. The function values at the
// endpoints must have opposite signs; if they do not, an error is
// returned. The root is located to within settings.Tol (default 1e-8).
func Zero(ax, bx float64, f Objective, settings *Settings) (*Result, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	tol := settings.Tol
	if tol == 0 {
		tol = DefaultZeroTol
	}

	z := NewBrentZero(tol)
	err := z.Init(f, ax, bx)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}

	loc, obj := z.Best()
	helper := NewHelper()
	helper.Init(settings, f, loc, obj)
	return run(helper, z, settings)
}
