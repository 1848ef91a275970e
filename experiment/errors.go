// SPDX-License-Identifier: MIT

package experiment

import "errors"

var (
	// ErrUnknownSolver is returned by Lookup for a name not in the registry.
	ErrUnknownSolver = errors.New("experiment: unknown solver")

	// ErrBadConfig wraps every Config.Validate failure.
	ErrBadConfig = errors.New("experiment: bad config")

	// ErrExactMismatch reports two exact solvers disagreeing on one instance.
	ErrExactMismatch = errors.New("experiment: exact solvers disagree")
)
