// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// StudentsT is a location-scale Student's t emission model over all
// reals. Its parameters, in positional order, are the location mu, the
// scale sigma, and the degrees of freedom nu. The heavy tails make it
// the usual choice for the body of a return series, leaving the
// one-sided families to model conditional gain and loss states.
type StudentsT struct {
	ys    []float64
	mu    float64
	sigma float64
	nu    float64
	fixed []bool
}

// NewStudentsT constructs a Student's t model over ys. When start is
// nil, mu and sigma default to the sample mean and standard deviation
// and nu defaults to 5.
func NewStudentsT(ys, start []float64, fixed []bool) (*StudentsT, error) {
	const name = "t"
	if err := checkStart(name, 3, start, fixed); err != nil {
		return nil, err
	}
	valid := filterSupport(ys, supportAll)
	if len(valid) == 0 {
		return nil, &ConstructionError{Model: name, Reason: "no valid observations"}
	}
	t := &StudentsT{ys: ys, fixed: fixedOrFree(fixed, 3)}
	if start != nil {
		t.mu, t.sigma, t.nu = start[0], start[1], start[2]
	} else {
		t.mu = stat.Mean(valid, nil)
		t.sigma = floorScale(stat.StdDev(valid, nil))
		t.nu = 5
	}
	return t, nil
}

func (t *StudentsT) Name() string            { return "t" }
func (t *StudentsT) Observations() []float64 { return t.ys }

func (t *StudentsT) Params() []Param {
	return []Param{
		{Name: "mu", Value: t.mu, Fixed: t.fixed[0]},
		{Name: "sigma", Value: t.sigma, Fixed: t.fixed[1]},
		{Name: "nu", Value: t.nu, Fixed: t.fixed[2]},
	}
}

func (t *StudentsT) logpdf(y float64) float64 {
	return distuv.StudentsT{Mu: t.mu, Sigma: t.sigma, Nu: t.nu}.LogProb(y)
}

func (t *StudentsT) Density(ys []float64, log bool) []float64 {
	return densityEach(ys, log, supportAll, t.logpdf)
}

func (t *StudentsT) LogLikelihood(weights []float64) float64 {
	return logLikelihood(t.ys, weights, supportAll, t.logpdf)
}

func (t *StudentsT) Fit(weights []float64) error {
	const name = "t"
	xs, ws := filterWeighted(t.ys, weights, supportAll)
	if len(xs) == 0 {
		return &FitError{Model: name, Reason: "no valid weighted observations"}
	}

	nll := func(theta []float64) float64 {
		d := distuv.StudentsT{Mu: theta[0], Sigma: theta[1], Nu: theta[2]}
		s := 0.0
		for i, x := range xs {
			s -= ws[i] * d.LogProb(x)
		}
		return s
	}
	xf := []transform{identity, logFloor(scaleMin), logFloor(nuMin)}
	theta, err := maximizeLikelihood([]float64{t.mu, t.sigma, t.nu}, t.fixed, xf, nll)
	if err != nil {
		return &FitError{Model: name, Reason: "likelihood optimization failed", Err: err}
	}
	t.mu, t.sigma, t.nu = theta[0], theta[1], theta[2]
	return nil
}
