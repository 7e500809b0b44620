// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GammaPos is a Gamma emission model restricted to strictly positive
// observations. Its parameters, in positional order, are the shape
// alpha and the rate beta.
type GammaPos struct {
	ys    []float64
	alpha float64
	beta  float64
	fixed []bool
}

// GammaNeg models strictly negative observations as a Gamma
// distribution over their magnitudes. Parameters are alpha and beta as
// for GammaPos, describing the distribution of |y|.
type GammaNeg struct {
	ys    []float64
	alpha float64
	beta  float64
	fixed []bool
}

// NewGammaPos constructs a positive-Gamma model over ys. When start is
// nil, alpha defaults to 2 and beta to alpha over the mean of the
// positive observations, matching the sample mean.
func NewGammaPos(ys, start []float64, fixed []bool) (*GammaPos, error) {
	alpha, beta, fx, err := gammaStart("gamma.pos", ys, start, fixed, supportPos, pass)
	if err != nil {
		return nil, err
	}
	return &GammaPos{ys: ys, alpha: alpha, beta: beta, fixed: fx}, nil
}

// NewGammaNeg constructs a negative-Gamma model over ys. Defaults
// mirror NewGammaPos, computed over the magnitudes of the negative
// observations.
func NewGammaNeg(ys, start []float64, fixed []bool) (*GammaNeg, error) {
	alpha, beta, fx, err := gammaStart("gamma.neg", ys, start, fixed, supportNeg, neg)
	if err != nil {
		return nil, err
	}
	return &GammaNeg{ys: ys, alpha: alpha, beta: beta, fixed: fx}, nil
}

func gammaStart(name string, ys, start []float64, fixed []bool, ok func(float64) bool, mag func(float64) float64) (alpha, beta float64, fx []bool, err error) {
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
	alpha = 2
	beta = alpha / floorScale(stat.Mean(valid, nil))
	return alpha, beta, fixedOrFree(fixed, 2), nil
}

func (g *GammaPos) Name() string            { return "gamma.pos" }
func (g *GammaPos) Observations() []float64 { return g.ys }

func (g *GammaPos) Params() []Param {
	return gammaParams(g.alpha, g.beta, g.fixed)
}

func (g *GammaPos) Density(ys []float64, log bool) []float64 {
	return densityEach(ys, log, supportPos, gammaLogPDF(g.alpha, g.beta, pass))
}

func (g *GammaPos) LogLikelihood(weights []float64) float64 {
	return logLikelihood(g.ys, weights, supportPos, gammaLogPDF(g.alpha, g.beta, pass))
}

func (g *GammaPos) Fit(weights []float64) error {
	alpha, beta, err := fitGamma("gamma.pos", g.ys, weights, g.alpha, g.beta, g.fixed, supportPos, pass)
	if err != nil {
		return err
	}
	g.alpha, g.beta = alpha, beta
	return nil
}

// Predict returns the Gamma mean alpha / beta.
func (g *GammaPos) Predict() float64 {
	return g.alpha / g.beta
}

func (g *GammaNeg) Name() string            { return "gamma.neg" }
func (g *GammaNeg) Observations() []float64 { return g.ys }

func (g *GammaNeg) Params() []Param {
	return gammaParams(g.alpha, g.beta, g.fixed)
}

func (g *GammaNeg) Density(ys []float64, log bool) []float64 {
	return densityEach(ys, log, supportNeg, gammaLogPDF(g.alpha, g.beta, neg))
}

func (g *GammaNeg) LogLikelihood(weights []float64) float64 {
	return logLikelihood(g.ys, weights, supportNeg, gammaLogPDF(g.alpha, g.beta, neg))
}

func (g *GammaNeg) Fit(weights []float64) error {
	alpha, beta, err := fitGamma("gamma.neg", g.ys, weights, g.alpha, g.beta, g.fixed, supportNeg, neg)
	if err != nil {
		return err
	}
	g.alpha, g.beta = alpha, beta
	return nil
}

// Predict returns -alpha / beta, the Gamma mean reported on the
// negative observation scale.
func (g *GammaNeg) Predict() float64 {
	return -g.alpha / g.beta
}

func gammaParams(alpha, beta float64, fixed []bool) []Param {
	return []Param{
		{Name: "alpha", Value: alpha, Fixed: fixed[0]},
		{Name: "beta", Value: beta, Fixed: fixed[1]},
	}
}

func gammaLogPDF(alpha, beta float64, mag func(float64) float64) func(float64) float64 {
	d := distuv.Gamma{Alpha: alpha, Beta: beta}
	return func(y float64) float64 { return d.LogProb(mag(y)) }
}

func fitGamma(name string, ys, weights []float64, alpha, beta float64, fixed []bool, ok func(float64) bool, mag func(float64) float64) (float64, float64, error) {
	xs, ws := filterWeighted(ys, weights, ok)
	if len(xs) == 0 {
		return 0, 0, &FitError{Model: name, Reason: "no valid weighted observations"}
	}
	for i, x := range xs {
		xs[i] = mag(x)
	}

	nll := func(theta []float64) float64 {
		d := distuv.Gamma{Alpha: theta[0], Beta: theta[1]}
		s := 0.0
		for i, x := range xs {
			s -= ws[i] * d.LogProb(x)
		}
		return s
	}
	xf := []transform{logFloor(scaleMin), logFloor(scaleMin)}
	theta, err := maximizeLikelihood([]float64{alpha, beta}, fixed, xf, nll)
	if err != nil {
		return 0, 0, &FitError{Model: name, Reason: "likelihood optimization failed", Err: err}
	}
	return theta[0], theta[1], nil
}
