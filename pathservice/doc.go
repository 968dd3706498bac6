// SPDX-License-Identifier: MIT

// Package pathservice answers "shortest path and fare from A to B" requests.
//
// A request resolves both stations through a StationRepository, loads every
// line through a LineRepository, builds a fresh network, searches it, prices
// the trip for the rider and returns a PathResponse. Nothing is cached
// between requests.
//
// Request-time failures come back as *PathCalculateError with a Kind;
// classify them with IsKind. Repository faults that are not "station not
// found" are returned as they are.
package pathservice
