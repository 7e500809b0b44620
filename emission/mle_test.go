// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"strings"
	"testing"
)

// TestMaximizeLikelihoodUnbounded drives the optimizer down an
// objective with no minimum. The evaluation budget runs out before any
// converger fires, and that must surface as an error rather than as
// the best point seen so far.
func TestMaximizeLikelihoodUnbounded(t *testing.T) {
	theta, err := maximizeLikelihood(
		[]float64{1}, nil, []transform{identity},
		func(theta []float64) float64 { return -theta[0] })
	if err == nil {
		t.Fatalf("want non-convergence error, got theta = %v", theta)
	}
	if !strings.Contains(err.Error(), "converging") {
		t.Errorf("error %q does not name the optimizer's stopping reason", err)
	}
}

// TestMaximizeLikelihoodAllFixed pins every parameter: the driver must
// return the start point untouched without invoking the optimizer.
func TestMaximizeLikelihoodAllFixed(t *testing.T) {
	theta, err := maximizeLikelihood(
		[]float64{2, 3}, []bool{true, true},
		[]transform{identity, identity},
		func(theta []float64) float64 { return theta[0]*theta[0] + theta[1]*theta[1] })
	if err != nil {
		t.Fatal(err)
	}
	if theta[0] != 2 || theta[1] != 3 {
		t.Errorf("all-fixed fit moved parameters to %v", theta)
	}
}
