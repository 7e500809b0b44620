// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// gammaSample draws n observations from Gamma(alpha=3, beta=2), whose
// mean is 1.5.
func gammaSample(n int) []float64 {
	gen := distuv.Gamma{Alpha: 3, Beta: 2, Src: rand.NewSource(7)}
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = gen.Rand()
	}
	return ys
}

func TestGammaPosPredict(t *testing.T) {
	ys := gammaSample(400)

	m, err := NewGammaPos(ys, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit(nil); err != nil {
		t.Fatal(err)
	}
	params := m.Params()
	alpha, beta := params[0].Value, params[1].Value
	if alpha <= 0 || beta <= 0 {
		t.Fatalf("fitted alpha = %v, beta = %v, want both > 0", alpha, beta)
	}
	if got := m.Predict(); !aeq(alpha/beta, got) {
		t.Errorf("Predict() = %v, want alpha/beta = %v", got, alpha/beta)
	}
	if got := m.Predict(); !aeqTol(1.5, got, 0.2) {
		t.Errorf("Predict() = %v, want ≅ population mean 1.5", got)
	}

	// The fitted density should peak near the bulk of the data:
	// much more mass at the sample mean than out in the tail.
	dMean := m.Density([]float64{1.5}, false)[0]
	dTail := m.Density([]float64{8}, false)[0]
	if dMean < 10*dTail {
		t.Errorf("density(1.5) = %v not well above density(8) = %v", dMean, dTail)
	}
}

// TestGammaNegPredict negates the same synthetic sample and checks the
// sign conventions: the density lives on the negative axis and the
// forecast is the negated Gamma mean.
func TestGammaNegPredict(t *testing.T) {
	ys := gammaSample(400)
	for i := range ys {
		ys[i] = -ys[i]
	}

	m, err := NewGammaNeg(ys, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit(nil); err != nil {
		t.Fatal(err)
	}
	params := m.Params()
	alpha, beta := params[0].Value, params[1].Value
	if got := m.Predict(); !aeq(-alpha/beta, got) {
		t.Errorf("Predict() = %v, want -alpha/beta = %v", got, -alpha/beta)
	}
	if got := m.Predict(); !aeqTol(-1.5, got, 0.2) {
		t.Errorf("Predict() = %v, want ≅ population mean -1.5", got)
	}
	if d := m.Density([]float64{1.5}, false)[0]; d != 0 {
		t.Errorf("density on the positive axis = %v, want 0", d)
	}
}

func TestGammaFixedAlpha(t *testing.T) {
	ys := gammaSample(100)
	m, err := NewGammaPos(ys, []float64{2, 1}, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit(nil); err != nil {
		t.Fatal(err)
	}
	if alpha := m.Params()[0].Value; alpha != 2 {
		t.Errorf("fixed alpha moved to %v", alpha)
	}
	if beta := m.Params()[1].Value; beta == 1 {
		t.Errorf("free beta did not move from its start value")
	}
}

// TestGammaRefitStable checks the warm-started M-step is stable under
// repeated identical weights.
func TestGammaRefitStable(t *testing.T) {
	ys := gammaSample(200)
	ws := make([]float64, len(ys))
	for i := range ws {
		ws[i] = 0.25 + 0.5*float64(i%3)
	}

	m, err := NewGammaPos(ys, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit(ws); err != nil {
		t.Fatal(err)
	}
	first := m.Params()
	if err := m.Fit(ws); err != nil {
		t.Fatal(err)
	}
	for i, p := range m.Params() {
		if !aeqTol(first[i].Value, p.Value, 0.05) {
			t.Errorf("refit moved %s from %v to %v", p.Name, first[i].Value, p.Value)
		}
	}
}
