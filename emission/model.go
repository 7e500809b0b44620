// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"math"
	"sort"
)

// A Param is one named parameter of an emission model. Fixed marks a
// parameter that Fit must hold at its current value.
type Param struct {
	Name  string
	Value float64
	Fixed bool
}

// A Model is an emission distribution bound to a fixed observation
// sequence. The parameter set is fixed at construction; only the
// parameter values change, and only through Fit.
type Model interface {
	// Name returns the registry name of the model's family.
	Name() string

	// Observations returns the observation sequence the model was
	// constructed with. Callers must not modify it.
	Observations() []float64

	// Params returns the current parameters in the family's
	// positional order.
	Params() []Param

	// Density returns the probability density at each ys[i], or the
	// log density if log is true. It is total: values outside the
	// family's support yield exactly 0 (-Inf in log form), never NaN.
	Density(ys []float64, log bool) []float64

	// Fit re-estimates the free parameters by maximum weighted
	// likelihood over the observation sequence. weights must have
	// one non-negative entry per observation; nil means uniform.
	// The optimizer warm-starts from the current parameter values.
	Fit(weights []float64) error

	// LogLikelihood returns the weighted log likelihood of the
	// observation sequence at the current parameters. nil weights
	// mean uniform. Zero-weight observations do not contribute,
	// even when they fall outside the support.
	LogLikelihood(weights []float64) float64
}

// A Predictor is a Model with a closed-form mean, used for point
// forecasts after the EM engine converges.
type Predictor interface {
	Model

	// Predict returns the mean of the fitted distribution.
	Predict() float64
}

var builders = map[string]func(ys, start []float64, fixed []bool) (Model, error){
	"t":           func(ys, start []float64, fixed []bool) (Model, error) { return NewStudentsT(ys, start, fixed) },
	"unif.pos":    func(ys, start []float64, fixed []bool) (Model, error) { return NewUniformPos(ys, start, fixed) },
	"weibull.pos": func(ys, start []float64, fixed []bool) (Model, error) { return NewWeibullPos(ys, start, fixed) },
	"weibull.neg": func(ys, start []float64, fixed []bool) (Model, error) { return NewWeibullNeg(ys, start, fixed) },
	"gamma.pos":   func(ys, start []float64, fixed []bool) (Model, error) { return NewGammaPos(ys, start, fixed) },
	"gamma.neg":   func(ys, start []float64, fixed []bool) (Model, error) { return NewGammaNeg(ys, start, fixed) },
	"lnorm.pos":   func(ys, start []float64, fixed []bool) (Model, error) { return NewLogNormalPos(ys, start, fixed) },
	"beta.pos":    func(ys, start []float64, fixed []bool) (Model, error) { return NewBetaPos(ys, start, fixed) },
}

// New constructs the named emission model family over ys. start, when
// non-nil, supplies starting parameter values in the family's
// positional order; fixed, when non-nil, marks parameters that Fit must
// not move. See Names for the available families.
func New(name string, ys, start []float64, fixed []bool) (Model, error) {
	build, ok := builders[name]
	if !ok {
		return nil, &ConstructionError{Model: name, Reason: "unknown model family"}
	}
	return build(ys, start, fixed)
}

// Names returns the registry names of all model families, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkStart validates optional start parameters and fixed mask
// lengths for a family with n parameters.
func checkStart(name string, n int, start []float64, fixed []bool) error {
	if start != nil && len(start) != n {
		return &ConstructionError{Model: name, Reason: "wrong start parameter count"}
	}
	if fixed != nil && len(fixed) != n {
		return &ConstructionError{Model: name, Reason: "fixed mask length does not match parameter count"}
	}
	return nil
}

// Support predicates shared by the model families.
func supportAll(float64) bool    { return true }
func supportPos(y float64) bool  { return y > 0 }
func supportNeg(y float64) bool  { return y < 0 }
func supportUnit(y float64) bool { return y > 0 && y < 1 }

// pass and neg map an in-support observation to the positive magnitude
// a one-sided family's density is evaluated at.
func pass(y float64) float64 { return y }
func neg(y float64) float64  { return -y }

// fixedOrFree returns fixed or, when nil, an all-free mask of length n.
func fixedOrFree(fixed []bool, n int) []bool {
	if fixed == nil {
		return make([]bool, n)
	}
	return append([]bool(nil), fixed...)
}

// floorScale keeps scale-type defaults strictly positive even for
// degenerate samples of a single repeated value.
func floorScale(s float64) float64 {
	if !(s > scaleMin) {
		return scaleMin
	}
	return s
}

// filterSupport returns the observations satisfying ok.
func filterSupport(ys []float64, ok func(float64) bool) []float64 {
	var valid []float64
	for _, y := range ys {
		if ok(y) {
			valid = append(valid, y)
		}
	}
	return valid
}

// filterWeighted returns the observations satisfying ok that carry
// positive weight, with their weights. ws may be nil for uniform
// weights.
func filterWeighted(ys, ws []float64, ok func(float64) bool) (xs, wxs []float64) {
	for i, y := range ys {
		w := 1.0
		if ws != nil {
			w = ws[i]
		}
		if w > 0 && ok(y) {
			xs = append(xs, y)
			wxs = append(wxs, w)
		}
	}
	return xs, wxs
}

// densityEach evaluates a family's log density over ys, returning
// linear or log densities. ok is the support predicate; outside it the
// result is exactly 0 (or -Inf), regardless of what logpdf would
// return there.
func densityEach(ys []float64, logForm bool, ok func(float64) bool, logpdf func(float64) float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		if !ok(y) {
			if logForm {
				res[i] = -inf
			} else {
				res[i] = 0
			}
			continue
		}
		lp := logpdf(y)
		if logForm {
			res[i] = lp
		} else {
			res[i] = math.Exp(lp)
		}
	}
	return res
}

// logLikelihood computes the weighted log likelihood of ys under
// logpdf. Zero-weight terms are skipped so they cannot introduce
// 0 * -Inf = NaN.
func logLikelihood(ys, ws []float64, ok func(float64) bool, logpdf func(float64) float64) float64 {
	ll := 0.0
	for i, y := range ys {
		w := 1.0
		if ws != nil {
			w = ws[i]
		}
		if w == 0 {
			continue
		}
		if !ok(y) {
			return -inf
		}
		ll += w * logpdf(y)
	}
	return ll
}
