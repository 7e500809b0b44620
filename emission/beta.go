// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// BetaPos is a Beta emission model over observations strictly inside
// the unit interval, typically proportions or normalized magnitudes.
// Its parameters, in positional order, are the shapes alpha and beta.
// The Beta family has no closed-form maximum likelihood estimate, so
// Fit runs the generic weighted-likelihood optimizer.
type BetaPos struct {
	ys    []float64
	alpha float64
	beta  float64
	fixed []bool
}

// NewBetaPos constructs a Beta model over ys. When start is nil, both
// shapes default to 2, a gentle unimodal prior the first weighted fit
// moves quickly.
func NewBetaPos(ys, start []float64, fixed []bool) (*BetaPos, error) {
	const name = "beta.pos"
	if err := checkStart(name, 2, start, fixed); err != nil {
		return nil, err
	}
	if len(filterSupport(ys, supportUnit)) == 0 {
		return nil, &ConstructionError{Model: name, Reason: "no valid observations"}
	}
	b := &BetaPos{ys: ys, alpha: 2, beta: 2, fixed: fixedOrFree(fixed, 2)}
	if start != nil {
		b.alpha, b.beta = start[0], start[1]
	}
	return b, nil
}

func (b *BetaPos) Name() string            { return "beta.pos" }
func (b *BetaPos) Observations() []float64 { return b.ys }

func (b *BetaPos) Params() []Param {
	return []Param{
		{Name: "alpha", Value: b.alpha, Fixed: b.fixed[0]},
		{Name: "beta", Value: b.beta, Fixed: b.fixed[1]},
	}
}

func (b *BetaPos) logpdf(y float64) float64 {
	return distuv.Beta{Alpha: b.alpha, Beta: b.beta}.LogProb(y)
}

func (b *BetaPos) Density(ys []float64, log bool) []float64 {
	return densityEach(ys, log, supportUnit, b.logpdf)
}

func (b *BetaPos) LogLikelihood(weights []float64) float64 {
	return logLikelihood(b.ys, weights, supportUnit, b.logpdf)
}

func (b *BetaPos) Fit(weights []float64) error {
	const name = "beta.pos"
	xs, ws := filterWeighted(b.ys, weights, supportUnit)
	if len(xs) == 0 {
		return &FitError{Model: name, Reason: "no valid weighted observations"}
	}

	nll := func(theta []float64) float64 {
		d := distuv.Beta{Alpha: theta[0], Beta: theta[1]}
		s := 0.0
		for i, x := range xs {
			s -= ws[i] * d.LogProb(x)
		}
		return s
	}
	xf := []transform{logFloor(scaleMin), logFloor(scaleMin)}
	theta, err := maximizeLikelihood([]float64{b.alpha, b.beta}, b.fixed, xf, nll)
	if err != nil {
		return &FitError{Model: name, Reason: "likelihood optimization failed", Err: err}
	}
	b.alpha, b.beta = theta[0], theta[1]
	return nil
}

// Predict returns the Beta mean alpha / (alpha + beta).
func (b *BetaPos) Predict() float64 {
	return b.alpha / (b.alpha + b.beta)
}
