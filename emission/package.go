// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emission implements the observation distributions of a
// regime-switching hidden Markov model.
//
// An emission model binds a probability distribution family to a fixed
// observation sequence. An external expectation-maximization engine
// drives the models: each E-step it evaluates Density over the sequence
// to build per-state responsibility weights, and each M-step it calls
// Fit with those weights to re-estimate the parameters. Fit always
// restarts its optimizer from the current parameter values, so repeated
// weighted fits converge stably across EM iterations.
//
// Most families restrict their support to one side of zero (or to the
// unit interval) so that separate states can model, say, positive and
// negative daily returns. Density is total: outside a family's support
// it is exactly 0, or -Inf in log form, for any real probe value.
package emission // import "github.com/tbreslin/go-regimes/emission"

import "math"

var inf = math.Inf(1)

const (
	// scaleMin is the floor for scale-type parameters (standard
	// deviations, Weibull scale, Gamma shape and rate, Beta
	// shapes). Weighted fits on nearly degenerate data can drive
	// scales toward zero, which makes the likelihood surface
	// unbounded; the floor keeps every density finite.
	scaleMin = 1e-8

	// nuMin is the floor for the Student's t degrees of freedom.
	// Below 3 the distribution loses its variance and EM weight
	// updates become erratic.
	nuMin = 3
)
