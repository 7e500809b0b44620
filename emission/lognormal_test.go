// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"math"
	"testing"
)

func TestLogNormalPosClosedForm(t *testing.T) {
	// log(ys) = {1, 2, 3}: meanlog 2, sdlog 1 exactly.
	ys := []float64{math.E, math.E * math.E, math.E * math.E * math.E}
	m, err := NewLogNormalPos(ys, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	params := m.Params()
	if !aeq(2, params[0].Value) {
		t.Errorf("meanlog = %v, want 2", params[0].Value)
	}
	if !aeq(1, params[1].Value) {
		t.Errorf("sdlog = %v, want 1", params[1].Value)
	}
	if got := m.Predict(); !aeq(math.Exp(2.5), got) {
		t.Errorf("Predict() = %v, want exp(meanlog + sdlog²/2) = %v", got, math.Exp(2.5))
	}
}

func TestLogNormalPosWeightedFit(t *testing.T) {
	ys := []float64{math.E, math.E * math.E, math.E * math.E * math.E}
	m, err := NewLogNormalPos(ys, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Doubling the weight on log(y)=3 pulls the weighted mean to
	// (1+2+3+3)/4 and the unbiased weighted sd to sqrt(2.75/3).
	if err := m.Fit([]float64{1, 1, 2}); err != nil {
		t.Fatal(err)
	}
	params := m.Params()
	if !aeq(2.25, params[0].Value) {
		t.Errorf("weighted meanlog = %v, want 2.25", params[0].Value)
	}
	if !aeq(math.Sqrt(2.75/3), params[1].Value) {
		t.Errorf("weighted sdlog = %v, want %v", params[1].Value, math.Sqrt(2.75/3))
	}
}

// TestLogNormalPosIgnoresNonPositive checks that non-positive
// observations are excluded from both construction defaults and fits.
func TestLogNormalPosIgnoresNonPositive(t *testing.T) {
	ys := []float64{-4, 0, math.E, math.E * math.E * math.E}
	m, err := NewLogNormalPos(ys, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(2, m.Params()[0].Value) {
		t.Errorf("meanlog = %v, want 2 from the positive observations only", m.Params()[0].Value)
	}
	if err := m.Fit(nil); err != nil {
		t.Fatal(err)
	}
	if !aeq(2, m.Params()[0].Value) {
		t.Errorf("refit meanlog = %v, want 2", m.Params()[0].Value)
	}
}
