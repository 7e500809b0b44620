// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emission

import "fmt"

// A ConstructionError reports that an emission model could not be
// built, most often because no observation lies in the family's
// support. It is fatal to model setup: the EM engine must not start
// with a state whose emission model has nothing to explain.
type ConstructionError struct {
	// Model is the registry name of the family that failed.
	Model string

	// Reason describes the failure.
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("emission: constructing %s model: %s", e.Model, e.Reason)
}

// A FitError reports that an M-step parameter update failed, either
// because no support-valid observation carried positive weight or
// because the likelihood optimizer did not converge. The error is
// propagated rather than papered over with default parameters, since a
// silent fallback would corrupt the EM likelihood trajectory.
type FitError struct {
	// Model is the registry name of the family that failed.
	Model string

	// Reason describes the failure.
	Reason string

	// Err is the underlying optimizer error, if any.
	Err error
}

func (e *FitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("emission: fitting %s model: %s: %v", e.Model, e.Reason, e.Err)
	}
	return fmt.Sprintf("emission: fitting %s model: %s", e.Model, e.Reason)
}

func (e *FitError) Unwrap() error {
	return e.Err
}
