package brent

import "math"

type quadratic struct {
	b float64
	c float64
}

func (q quadratic) Obj(x float64) float64 {
	return (x-q.b)*(x-q.b) + q.c
}

func (q quadratic) OptVal() float64 {
	return q.c
}

func (q quadratic) OptLoc() float64 {
	return q.b
}

// cubic is 6.25 + x^2*(8x - 24), with a local minimum at x = 2 where it
// takes the value -25.75, and real roots near 0.5666173 and 2.9075889.
type cubic struct{}

func (cubic) Obj(x float64) float64 {
	return 6.25 + x*x*(8*x-24)
}

// sinc has its first negative minimum at x = 4.4934094397196 where it
// takes the value -0.217233628211222.
type sinc struct{}

func (sinc) Obj(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}
