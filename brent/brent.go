// Package brent provides derivative-free one-dimensional function
// minimization and root finding using Brent's method. Minimization
// combines golden-section search with inverse parabolic interpolation,
// giving superlinear convergence near the minimum without requiring
// gradient information.
//
// The typical entry point is Minimize, which brackets a minimum near a
// starting guess and refines it. Bracket and Refine expose the two
// phases separately, and Zero finds a sign change of the function on a
// bracketing interval.
package brent

import (
	"math"

	"github.com/jgamble/Math-Brent/common"
	"github.com/jgamble/Math-Brent/write"
)

// Objective is a real scalar function of a real scalar argument.
type Objective interface {
	Obj(x float64) float64
}

// ObjectiveFunc adapts an ordinary function to the Objective interface.
type ObjectiveFunc func(x float64) float64

func (f ObjectiveFunc) Obj(x float64) float64 { return f(x) }

// Default fractional precision targets for the drivers. A Settings.Tol
// of zero selects the driver's default. Tolerances below roughly 1e-11
// are dominated by the fixed epsilon floor and achieve no further
// precision.
const (
	DefaultRefineTol   = 1e-8
	DefaultMinimizeTol = 1e-7
	DefaultZeroTol     = 1e-8
)

// Settings is a structure containing settings for the univariate
// routines. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings
	*common.SingleOutputSettings

	// Tol is the fractional precision target. Zero selects the
	// calling driver's default.
	Tol float64

	// InitialObjective is the value of the objective function at the
	// initial location, if already known. NaN means it will be evaluated.
	InitialObjective float64
}

// DefaultSettings returns the default settings for the univariate routines.
// The iteration budget defaults to 100; exhausting it is a soft failure
// (the best point found is returned with a MaximumIterations status).
func DefaultSettings() *Settings {
	c := common.DefaultCommonSettings()
	c.MaximumIterations = 100
	return &Settings{
		CommonSettings:       c,
		SingleOutputSettings: common.DefaultSingleOutputSettings(),
		InitialObjective:     math.NaN(),
	}
}

// Helper is a helper struct for the driver loop. Not intended for use by
// callers of the package-level functions, but exported to aid others who
// are building on the optimizers directly.
//
// Drivers should call Init at the beginning of a run, Status to check
// tolerances and budgets, and Iterate at the end of every iteration.
type Helper struct {
	*common.Common
	*common.SingleOutput

	objCurr float64
	locCurr float64
}

// NewHelper creates a new Helper and adds itself to the data adders
func NewHelper() *Helper {
	h := &Helper{
		Common:       common.NewCommon(),
		SingleOutput: common.NewSingleOutput(),
	}
	h.AddDataAdder(h)
	return h
}

func (h *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: h.locCurr})
	v = append(v, &write.Value{Heading: "Obj", Value: h.objCurr})
	return v
}

func (h *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc, initObj float64) {
	h.Common.Init(s.CommonSettings, objectiveFunction)
	h.SingleOutput.Init(s.SingleOutputSettings, initObj)

	h.locCurr = initLoc
	h.objCurr = initObj
}

func (h *Helper) Iterate(loc, obj float64, nFunEvals int) {
	h.Common.Iterate(nFunEvals)
	h.SingleOutput.Iterate(obj)

	h.locCurr = loc
	h.objCurr = obj
}

func (h *Helper) Status() common.Status {
	status := h.SingleOutput.Status()
	if status != common.Continue {
		return status
	}
	return h.Common.Status()
}

type Result struct {
	*common.CommonResult
	Obj float64 // Lowest found value of the objective function (for Zero, the value at the root)
	Loc float64 // Location where Obj was obtained
}
