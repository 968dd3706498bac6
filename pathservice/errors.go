// SPDX-License-Identifier: MIT

package pathservice

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected path request.
type ErrorKind string

const (
	KindSameStation     ErrorKind = "same_station"
	KindUnknownStation  ErrorKind = "unknown_station"
	KindNoPath          ErrorKind = "no_path"
	KindStationNotFound ErrorKind = "station_not_found"
)

// PathCalculateError is returned for every request the service rejects.
// Msg is meant for the end user; Err keeps the underlying cause.
type PathCalculateError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *PathCalculateError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("pathservice: %s: %s", e.Kind, e.Msg)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *PathCalculateError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// IsKind reports whether err is a *PathCalculateError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *PathCalculateError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}

	return false
}

func reject(kind ErrorKind, err error, format string, args ...any) *PathCalculateError {
	return &PathCalculateError{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
