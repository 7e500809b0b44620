// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformPos is a uniform emission model over strictly positive
// observations. Its parameters, in positional order, are min and max,
// the interval endpoints. It is the usual "don't care" state: flat
// likelihood inside the observed range, so responsibility weights flow
// to the structured families wherever they explain the data better.
//
// The fit is closed-form order statistics. With a non-empty weighted
// sample it cannot fail numerically.
type UniformPos struct {
	ys    []float64
	min   float64
	max   float64
	fixed []bool
}

// NewUniformPos constructs a positive-uniform model over ys. When
// start is nil, min and max default to the extremes of the positive
// observations.
func NewUniformPos(ys, start []float64, fixed []bool) (*UniformPos, error) {
	const name = "unif.pos"
	if err := checkStart(name, 2, start, fixed); err != nil {
		return nil, err
	}
	valid := filterSupport(ys, supportPos)
	if len(valid) == 0 {
		return nil, &ConstructionError{Model: name, Reason: "no valid observations"}
	}
	u := &UniformPos{ys: ys, fixed: fixedOrFree(fixed, 2)}
	if start != nil {
		u.min, u.max = start[0], start[1]
	} else {
		u.min, u.max = floats.Min(valid), floats.Max(valid)
	}
	u.widenDegenerate()
	return u, nil
}

// widenDegenerate keeps the interval non-empty when every observation
// is the same value, so the density stays finite. Only a free endpoint
// may move; with both endpoints pinned the interval is the caller's.
func (u *UniformPos) widenDegenerate() {
	if u.max > u.min {
		return
	}
	switch {
	case !u.fixed[1]:
		u.max = u.min + scaleMin
	case !u.fixed[0]:
		u.min = u.max - scaleMin
	}
}

func (u *UniformPos) Name() string            { return "unif.pos" }
func (u *UniformPos) Observations() []float64 { return u.ys }

func (u *UniformPos) Params() []Param {
	return []Param{
		{Name: "min", Value: u.min, Fixed: u.fixed[0]},
		{Name: "max", Value: u.max, Fixed: u.fixed[1]},
	}
}

func (u *UniformPos) logpdf(y float64) float64 {
	return distuv.Uniform{Min: u.min, Max: u.max}.LogProb(y)
}

func (u *UniformPos) Density(ys []float64, log bool) []float64 {
	return densityEach(ys, log, supportPos, u.logpdf)
}

func (u *UniformPos) LogLikelihood(weights []float64) float64 {
	return logLikelihood(u.ys, weights, supportPos, u.logpdf)
}

func (u *UniformPos) Fit(weights []float64) error {
	const name = "unif.pos"
	xs, _ := filterWeighted(u.ys, weights, supportPos)
	if len(xs) == 0 {
		return &FitError{Model: name, Reason: "no valid weighted observations"}
	}
	if !u.fixed[0] {
		u.min = floats.Min(xs)
	}
	if !u.fixed[1] {
		u.max = floats.Max(xs)
	}
	u.widenDegenerate()
	return nil
}
