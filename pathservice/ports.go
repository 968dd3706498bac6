// SPDX-License-Identifier: MIT

package pathservice

import (
	"context"

	"github.com/katalvlaran/metropath/subway"
)

// StationRepository reads stations. FindByID must wrap subway.ErrStationNotFound
// when the station does not exist; any other error is treated as a fault.
type StationRepository interface {
	FindByID(ctx context.Context, id int64) (*subway.Station, error)
	FindAll(ctx context.Context) ([]*subway.Station, error)
	// FindAllByIDIn returns the stations among ids that exist, in any order.
	FindAllByIDIn(ctx context.Context, ids []int64) ([]*subway.Station, error)
}

// LineRepository reads lines together with their sections.
type LineRepository interface {
	FindAll(ctx context.Context) ([]*subway.Line, error)
}
