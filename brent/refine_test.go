package brent

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jgamble/Math-Brent/common"
)

func TestMinimizeCubic(t *testing.T) {
	result, err := Minimize(3, 0.5, cubic{}, nil)
	if err != nil {
		t.Fatalf("error minimizing: %v", err)
	}
	if result.Status != common.BoundsConverged {
		t.Errorf("unexpected status: %v", result.Status)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, 2, 1e-5, 1e-5) {
		t.Errorf("location doesn't match. Expected: %v, Found: %v", 2.0, result.Loc)
	}
	if !scalar.EqualWithinAbsOrRel(result.Obj, -25.75, 1e-8, 1e-8) {
		t.Errorf("objective doesn't match. Expected: %v, Found: %v", -25.75, result.Obj)
	}
}

func TestMinimizeSinc(t *testing.T) {
	result, err := Minimize(1, 1, sinc{}, nil)
	if err != nil {
		t.Fatalf("error minimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, 4.4934094397196, 1e-7, 1e-7) {
		t.Errorf("location doesn't match. Expected: %v, Found: %v", 4.4934094397196, result.Loc)
	}
	if !scalar.EqualWithinAbsOrRel(result.Obj, -0.217233628211222, 1e-10, 1e-10) {
		t.Errorf("objective doesn't match. Expected: %v, Found: %v", -0.217233628211222, result.Obj)
	}
}

func TestMinimizeQuadratic(t *testing.T) {
	q := quadratic{b: 3, c: 5}
	tol := 1e-7
	for _, guess := range []float64{-7, 0, 3.5, 20} {
		result, err := Minimize(guess, 1, q, nil)
		if err != nil {
			t.Fatalf("guess %v: error minimizing: %v", guess, err)
		}
		if !scalar.EqualWithinAbsOrRel(result.Loc, q.OptLoc(), tol, tol) {
			t.Errorf("guess %v: location doesn't match. Expected: %v, Found: %v. Status: %v",
				guess, q.OptLoc(), result.Loc, result.Status)
		}
		if !scalar.EqualWithinAbsOrRel(result.Obj, q.OptVal(), tol, tol) {
			t.Errorf("guess %v: objective doesn't match. Expected: %v, Found: %v",
				guess, q.OptVal(), result.Obj)
		}
	}
}

// Refining the degenerate triplet obtained from a converged result must
// return the same point without taking any iterations.
func TestRefineIdempotent(t *testing.T) {
	result, err := Minimize(1, 1, sinc{}, nil)
	if err != nil {
		t.Fatalf("error minimizing: %v", err)
	}

	again, err := Refine(result.Loc, result.Loc, result.Loc, sinc{}, nil)
	if err != nil {
		t.Fatalf("error refining: %v", err)
	}
	if again.Iterations != 0 {
		t.Errorf("expected immediate convergence, took %d iterations", again.Iterations)
	}
	if again.Loc != result.Loc {
		t.Errorf("location moved on refining a converged point: %v vs %v", again.Loc, result.Loc)
	}

	third, err := Refine(result.Loc, result.Loc, result.Loc, sinc{}, nil)
	if err != nil {
		t.Fatalf("error refining: %v", err)
	}
	diff := cmp.Diff(again, third,
		cmpopts.IgnoreFields(common.CommonResult{}, "Runtime"))
	if diff != "" {
		t.Errorf("repeated refinement differs (-first +second):\n%s", diff)
	}
}

// Below the fixed epsilon floor, tightening the tolerance must not change
// the answer.
func TestRefineTolFloor(t *testing.T) {
	q := quadratic{b: 3, c: 5}

	settings := DefaultSettings()
	settings.Tol = 1e-11
	coarse, err := Refine(-1, 2.9, 7, q, settings)
	if err != nil {
		t.Fatalf("error refining: %v", err)
	}

	settings = DefaultSettings()
	settings.Tol = 1e-13
	fine, err := Refine(-1, 2.9, 7, q, settings)
	if err != nil {
		t.Fatalf("error refining: %v", err)
	}

	if coarse.Status != common.BoundsConverged || fine.Status != common.BoundsConverged {
		t.Fatalf("unexpected statuses: %v, %v", coarse.Status, fine.Status)
	}
	if !scalar.EqualWithinAbs(coarse.Loc, fine.Loc, 1e-9) {
		t.Errorf("location did not stabilize below the epsilon floor: %v vs %v",
			coarse.Loc, fine.Loc)
	}
}

// Exhausting the iteration budget is a soft failure: the best point found
// is returned, the status records it, and a warning is emitted.
func TestRefineMaxIterations(t *testing.T) {
	q := quadratic{b: 3, c: 5}

	var buf bytes.Buffer
	settings := DefaultSettings()
	settings.Tol = 1e-12
	settings.MaximumIterations = 2
	settings.WarningWriter = &buf

	result, err := Refine(-1, 2.9, 7, q, settings)
	if err != nil {
		t.Fatalf("error refining: %v", err)
	}
	if result.Status != common.MaximumIterations {
		t.Errorf("unexpected status: %v", result.Status)
	}
	if result.Iterations != 2 {
		t.Errorf("expected exactly 2 iterations, took %d", result.Iterations)
	}
	if result.FunctionEvaluations != 2 {
		t.Errorf("expected exactly 2 function evaluations, took %d", result.FunctionEvaluations)
	}
	if result.Obj > q.Obj(2.9) {
		t.Errorf("returned point is worse than the starting point: %v", result.Obj)
	}
	if !strings.Contains(buf.String(), "exceeded maximum iterations") {
		t.Errorf("missing non-convergence warning, got %q", buf.String())
	}
}

func TestRefineObjAbsTol(t *testing.T) {
	q := quadratic{b: 3, c: 5}

	settings := DefaultSettings()
	settings.ObjAbsTol = 5.5
	result, err := Refine(-1, 2.9, 7, q, settings)
	if err != nil {
		t.Fatalf("error refining: %v", err)
	}
	if result.Status != common.ObjAbsTol {
		t.Errorf("unexpected status: %v", result.Status)
	}
	if result.Obj >= 5.5 {
		t.Errorf("objective %v not below the absolute tolerance", result.Obj)
	}
}

func TestRefineInitialObjective(t *testing.T) {
	q := quadratic{b: 3, c: 5}

	settings := DefaultSettings()
	settings.InitialObjective = q.Obj(2.9)
	result, err := Refine(-1, 2.9, 7, q, settings)
	if err != nil {
		t.Fatalf("error refining: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, 3, 1e-6, 1e-6) {
		t.Errorf("location doesn't match. Expected: %v, Found: %v", 3.0, result.Loc)
	}
}

// stopper ends the run through the optional Statuser interface on the
// objective once it has been evaluated too many times.
type stopper struct {
	quadratic
	calls int
}

func (s *stopper) Obj(x float64) float64 {
	s.calls++
	return s.quadratic.Obj(x)
}

func (s *stopper) Status() common.Status {
	if s.calls > 5 {
		return common.UserFunctionError
	}
	return common.Continue
}

func TestObjectiveStatuser(t *testing.T) {
	f := &stopper{quadratic: quadratic{b: 3, c: 5}}

	settings := DefaultSettings()
	settings.Tol = 1e-12
	result, err := Refine(-1, 2.9, 7, f, settings)
	if err != nil {
		t.Fatalf("error refining: %v", err)
	}
	if result.Status != common.UserFunctionError {
		t.Errorf("unexpected status: %v", result.Status)
	}
}

func TestBrentNegativeTol(t *testing.T) {
	b := NewBrent(-1)
	err := b.Init(quadratic{b: 3, c: 5}, -1, 2.9, 7, math.NaN())
	if err == nil {
		t.Error("expected an error for a negative tolerance")
	}
}
