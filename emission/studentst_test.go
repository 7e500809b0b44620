// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestStudentsTDefaults(t *testing.T) {
	m, err := NewStudentsT([]float64{1, 2, 3}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	params := m.Params()
	if !aeq(2, params[0].Value) {
		t.Errorf("default mu = %v, want 2", params[0].Value)
	}
	if !aeq(1, params[1].Value) {
		t.Errorf("default sigma = %v, want 1", params[1].Value)
	}
	if !aeq(5, params[2].Value) {
		t.Errorf("default nu = %v, want 5", params[2].Value)
	}
}

func TestStudentsTFit(t *testing.T) {
	src := rand.NewSource(1)
	gen := distuv.StudentsT{Mu: 0.5, Sigma: 1, Nu: 6, Src: src}
	ys := make([]float64, 400)
	for i := range ys {
		ys[i] = gen.Rand()
	}

	m, err := NewStudentsT(ys, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit(nil); err != nil {
		t.Fatal(err)
	}
	params := m.Params()
	if !aeqTol(0.5, params[0].Value, 0.35) {
		t.Errorf("fitted mu = %v, want ≅ 0.5", params[0].Value)
	}
	if sigma := params[1].Value; sigma < 0.5 || sigma > 2 {
		t.Errorf("fitted sigma = %v, want near 1", sigma)
	}
	if nu := params[2].Value; nu < nuMin {
		t.Errorf("fitted nu = %v, want >= %v", nu, float64(nuMin))
	}
}

func TestStudentsTFixedMu(t *testing.T) {
	ys := []float64{-1.2, 0.3, 0.9, 1.4, 2.2, -0.5, 0.1}
	m, err := NewStudentsT(ys, []float64{0, 1, 5}, []bool{true, false, false})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit(nil); err != nil {
		t.Fatal(err)
	}
	if mu := m.Params()[0].Value; mu != 0 {
		t.Errorf("fixed mu moved to %v", mu)
	}
	if sigma := m.Params()[1].Value; sigma == 1 {
		t.Errorf("free sigma did not move from its start value")
	}
}
