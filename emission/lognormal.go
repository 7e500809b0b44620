// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormalPos is a log-normal emission model over strictly positive
// observations. Its parameters, in positional order, are meanlog and
// sdlog, the mean and standard deviation of log(y).
//
// The fit is closed-form: a weighted normal fit to the log-transformed
// observations. No numerical optimizer is involved, so unlike the
// generic-MLE families it cannot fail to converge.
type LogNormalPos struct {
	ys      []float64
	meanlog float64
	sdlog   float64
	fixed   []bool
}

// NewLogNormalPos constructs a log-normal model over ys. When start is
// nil, meanlog and sdlog default to the mean and standard deviation of
// the log of the positive observations.
func NewLogNormalPos(ys, start []float64, fixed []bool) (*LogNormalPos, error) {
	const name = "lnorm.pos"
	if err := checkStart(name, 2, start, fixed); err != nil {
		return nil, err
	}
	valid := filterSupport(ys, supportPos)
	if len(valid) == 0 {
		return nil, &ConstructionError{Model: name, Reason: "no valid observations"}
	}
	ln := &LogNormalPos{ys: ys, fixed: fixedOrFree(fixed, 2)}
	if start != nil {
		ln.meanlog, ln.sdlog = start[0], start[1]
	} else {
		for i, v := range valid {
			valid[i] = math.Log(v)
		}
		ln.meanlog = stat.Mean(valid, nil)
		ln.sdlog = floorScale(stat.StdDev(valid, nil))
	}
	return ln, nil
}

func (ln *LogNormalPos) Name() string            { return "lnorm.pos" }
func (ln *LogNormalPos) Observations() []float64 { return ln.ys }

func (ln *LogNormalPos) Params() []Param {
	return []Param{
		{Name: "meanlog", Value: ln.meanlog, Fixed: ln.fixed[0]},
		{Name: "sdlog", Value: ln.sdlog, Fixed: ln.fixed[1]},
	}
}

func (ln *LogNormalPos) logpdf(y float64) float64 {
	return distuv.LogNormal{Mu: ln.meanlog, Sigma: ln.sdlog}.LogProb(y)
}

func (ln *LogNormalPos) Density(ys []float64, log bool) []float64 {
	return densityEach(ys, log, supportPos, ln.logpdf)
}

func (ln *LogNormalPos) LogLikelihood(weights []float64) float64 {
	return logLikelihood(ln.ys, weights, supportPos, ln.logpdf)
}

func (ln *LogNormalPos) Fit(weights []float64) error {
	const name = "lnorm.pos"
	xs, ws := filterWeighted(ln.ys, weights, supportPos)
	if len(xs) == 0 {
		return &FitError{Model: name, Reason: "no valid weighted observations"}
	}
	for i, x := range xs {
		xs[i] = math.Log(x)
	}
	if !ln.fixed[0] {
		ln.meanlog = stat.Mean(xs, ws)
	}
	if !ln.fixed[1] {
		ln.sdlog = floorScale(stat.StdDev(xs, ws))
	}
	return nil
}

// Predict returns the log-normal mean exp(meanlog + sdlog^2/2).
func (ln *LogNormalPos) Predict() float64 {
	return distuv.LogNormal{Mu: ln.meanlog, Sigma: ln.sdlog}.Mean()
}
