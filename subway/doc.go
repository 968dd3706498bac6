// SPDX-License-Identifier: MIT

// Package subway defines the domain model of a multi-line rail network:
// stations, lines, the sections that connect stations on a line, and the
// Distance and Fare value types used by path finding and fare calculation.
//
// Constructors fail fast. A Distance is always positive, a Fare is never
// negative, and a Section always joins two distinct stations. Violations are
// reported with sentinel errors that callers test via errors.Is:
//
//	ErrInvalidDistance - distance value is zero or negative.
//	ErrInvalidFare     - fare value is negative.
//	ErrInvalidSection  - section endpoints are nil or identical.
//	ErrInvalidAge      - member age is negative.
//	ErrStationNotFound - a station lookup found nothing (collaborator contract).
//
// Ownership:
//
//	Line ──owns──▶ []*Section ──looks up──▶ *Line
//
// A Section keeps a non-owning back-reference to its Line so that fare
// calculation can attribute a traversed section to the line that charges for
// it. Sections are created only through Line.AddSection.
//
// A Line exposes its sections as a lazy, single-pass iter.Seq. Consumers such
// as the graph builder must range over it exactly once per build.
package subway
