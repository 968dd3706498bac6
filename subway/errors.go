// SPDX-License-Identifier: MIT

package subway

import "errors"

// Sentinel errors for domain construction and lookups.
var (
	// ErrInvalidDistance indicates a distance that is not strictly positive.
	ErrInvalidDistance = errors.New("subway: distance must be positive")

	// ErrInvalidFare indicates a negative fare amount.
	ErrInvalidFare = errors.New("subway: fare must not be negative")

	// ErrInvalidSection indicates a section whose endpoints are nil or the same station.
	ErrInvalidSection = errors.New("subway: section endpoints must be two distinct stations")

	// ErrInvalidAge indicates a negative member age.
	ErrInvalidAge = errors.New("subway: age must not be negative")

	// ErrStationNotFound is returned by station lookups when no station has the requested ID.
	ErrStationNotFound = errors.New("subway: station not found")
)
