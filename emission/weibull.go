// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// WeibullPos is a Weibull emission model restricted to strictly
// positive observations. Its parameters, in positional order, are the
// scale lambda and the shape k.
type WeibullPos struct {
	ys     []float64
	lambda float64
	k      float64
	fixed  []bool
}

// WeibullNeg is the mirror image of WeibullPos: it models strictly
// negative observations as a Weibull distribution over their
// magnitudes, so a loss state can carry the same tail behavior a gain
// state gets from WeibullPos. Parameters are lambda and k as for
// WeibullPos, describing the distribution of |y|.
type WeibullNeg struct {
	ys     []float64
	lambda float64
	k      float64
	fixed  []bool
}

// NewWeibullPos constructs a positive-Weibull model over ys. When
// start is nil, k defaults to 1.5 and lambda to the mean of the
// positive observations.
func NewWeibullPos(ys, start []float64, fixed []bool) (*WeibullPos, error) {
	lambda, k, fx, err := weibullStart("weibull.pos", ys, start, fixed, supportPos, pass)
	if err != nil {
		return nil, err
	}
	return &WeibullPos{ys: ys, lambda: lambda, k: k, fixed: fx}, nil
}

// NewWeibullNeg constructs a negative-Weibull model over ys. Defaults
// mirror NewWeibullPos, computed over the magnitudes of the negative
// observations.
func NewWeibullNeg(ys, start []float64, fixed []bool) (*WeibullNeg, error) {
	lambda, k, fx, err := weibullStart("weibull.neg", ys, start, fixed, supportNeg, neg)
	if err != nil {
		return nil, err
	}
	return &WeibullNeg{ys: ys, lambda: lambda, k: k, fixed: fx}, nil
}

func weibullStart(name string, ys, start []float64, fixed []bool, ok func(float64) bool, mag func(float64) float64) (lambda, k float64, fx []bool, err error) {
	if err := checkStart(name, 2, start, fixed); err != nil {
		return 0, 0, nil, err
	}
	valid := filterSupport(ys, ok)
	if len(valid) == 0 {
		return 0, 0, nil, &ConstructionError{Model: name, Reason: "no valid observations"}
	}
	if start != nil {
		return start[0], start[1], fixedOrFree(fixed, 2), nil
	}
	for i, v := range valid {
		valid[i] = mag(v)
	}
	return floorScale(stat.Mean(valid, nil)), 1.5, fixedOrFree(fixed, 2), nil
}

func (w *WeibullPos) Name() string            { return "weibull.pos" }
func (w *WeibullPos) Observations() []float64 { return w.ys }

func (w *WeibullPos) Params() []Param {
	return weibullParams(w.lambda, w.k, w.fixed)
}

func (w *WeibullPos) Density(ys []float64, log bool) []float64 {
	return densityEach(ys, log, supportPos, weibullLogPDF(w.lambda, w.k, pass))
}

func (w *WeibullPos) LogLikelihood(weights []float64) float64 {
	return logLikelihood(w.ys, weights, supportPos, weibullLogPDF(w.lambda, w.k, pass))
}

func (w *WeibullPos) Fit(weights []float64) error {
	lambda, k, err := fitWeibull("weibull.pos", w.ys, weights, w.lambda, w.k, w.fixed, supportPos, pass)
	if err != nil {
		return err
	}
	w.lambda, w.k = lambda, k
	return nil
}

// Predict returns the Weibull mean lambda * Gamma(1 + 1/k).
func (w *WeibullPos) Predict() float64 {
	return distuv.Weibull{K: w.k, Lambda: w.lambda}.Mean()
}

func (w *WeibullNeg) Name() string            { return "weibull.neg" }
func (w *WeibullNeg) Observations() []float64 { return w.ys }

func (w *WeibullNeg) Params() []Param {
	return weibullParams(w.lambda, w.k, w.fixed)
}

func (w *WeibullNeg) Density(ys []float64, log bool) []float64 {
	return densityEach(ys, log, supportNeg, weibullLogPDF(w.lambda, w.k, neg))
}

func (w *WeibullNeg) LogLikelihood(weights []float64) float64 {
	return logLikelihood(w.ys, weights, supportNeg, weibullLogPDF(w.lambda, w.k, neg))
}

func (w *WeibullNeg) Fit(weights []float64) error {
	lambda, k, err := fitWeibull("weibull.neg", w.ys, weights, w.lambda, w.k, w.fixed, supportNeg, neg)
	if err != nil {
		return err
	}
	w.lambda, w.k = lambda, k
	return nil
}

// Predict returns the negated Weibull mean, the expected magnitude of
// a loss reported on the observation scale.
func (w *WeibullNeg) Predict() float64 {
	return -distuv.Weibull{K: w.k, Lambda: w.lambda}.Mean()
}

func weibullParams(lambda, k float64, fixed []bool) []Param {
	return []Param{
		{Name: "lambda", Value: lambda, Fixed: fixed[0]},
		{Name: "k", Value: k, Fixed: fixed[1]},
	}
}

// weibullLogPDF returns the log density on the observation scale; mag
// maps an in-support observation to the positive magnitude the Weibull
// density is evaluated at.
func weibullLogPDF(lambda, k float64, mag func(float64) float64) func(float64) float64 {
	d := distuv.Weibull{K: k, Lambda: lambda}
	return func(y float64) float64 { return d.LogProb(mag(y)) }
}

func fitWeibull(name string, ys, weights []float64, lambda, k float64, fixed []bool, ok func(float64) bool, mag func(float64) float64) (float64, float64, error) {
	xs, ws := filterWeighted(ys, weights, ok)
	if len(xs) == 0 {
		return 0, 0, &FitError{Model: name, Reason: "no valid weighted observations"}
	}
	for i, x := range xs {
		xs[i] = mag(x)
	}

	nll := func(theta []float64) float64 {
		d := distuv.Weibull{K: theta[1], Lambda: theta[0]}
		s := 0.0
		for i, x := range xs {
			s -= ws[i] * d.LogProb(x)
		}
		return s
	}
	xf := []transform{logFloor(scaleMin), logFloor(scaleMin)}
	theta, err := maximizeLikelihood([]float64{lambda, k}, fixed, xf, nll)
	if err != nil {
		return 0, 0, &FitError{Model: name, Reason: "likelihood optimization failed", Err: err}
	}
	return theta[0], theta[1], nil
}
