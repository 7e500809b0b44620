// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// A transform maps one parameter between its constrained domain and
// the optimizer's unconstrained search space. Nelder-Mead knows
// nothing about bounds, so bounded parameters are searched in a
// transformed coordinate where every real value is legal.
type transform struct {
	fwd func(theta float64) float64 // constrained -> unconstrained
	inv func(z float64) float64     // unconstrained -> constrained
}

// identity is the transform for unbounded parameters.
var identity = transform{
	fwd: func(theta float64) float64 { return theta },
	inv: func(z float64) float64 { return z },
}

// logFloor bounds a parameter strictly above floor via
// theta = floor + exp(z).
func logFloor(floor float64) transform {
	return transform{
		fwd: func(theta float64) float64 {
			if theta <= floor {
				theta = floor + scaleMin
			}
			return math.Log(theta - floor)
		},
		inv: func(z float64) float64 { return floor + math.Exp(z) },
	}
}

// maximizeLikelihood minimizes the negative weighted log likelihood
// nll over the parameters that are not marked fixed, warm-starting
// from start. Fixed parameters are held at their start values and
// never enter the search space. It returns the full updated parameter
// vector.
func maximizeLikelihood(start []float64, fixed []bool, xf []transform, nll func(theta []float64) float64) ([]float64, error) {
	var free []int
	for i := range start {
		if fixed == nil || !fixed[i] {
			free = append(free, i)
		}
	}
	theta := append([]float64(nil), start...)
	if len(free) == 0 {
		// Everything is pinned. The "fit" is the start point.
		return theta, nil
	}

	z0 := make([]float64, len(free))
	for j, i := range free {
		z0[j] = xf[i].fwd(start[i])
	}

	problem := optimize.Problem{
		Func: func(z []float64) float64 {
			for j, i := range free {
				theta[i] = xf[i].inv(z[j])
			}
			v := nll(theta)
			if math.IsNaN(v) {
				return inf
			}
			return v
		},
	}
	settings := &optimize.Settings{
		MajorIterations: 1000,
		FuncEvaluations: 10000,
		Converger: &optimize.FunctionConverge{
			Iterations: 100,
			Relative:   1e-10,
		},
	}

	result, err := optimize.Minimize(problem, z0, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, err
	}
	switch result.Status {
	case optimize.Success, optimize.FunctionConvergence, optimize.GradientThreshold, optimize.StepConvergence:
	default:
		// A limit status means the budget ran out before the
		// converger fired. Returning the best point anyway would
		// hand the EM loop an unconverged M-step with no way to
		// tell, so it is an error.
		return nil, fmt.Errorf("optimizer stopped without converging: %v", result.Status)
	}
	for j, i := range free {
		theta[i] = xf[i].inv(result.X[j])
	}
	return theta, nil
}
