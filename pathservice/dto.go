// SPDX-License-Identifier: MIT

package pathservice

// PathRequest names the two stations of a trip.
type PathRequest struct {
	Source int64 `json:"source"`
	Target int64 `json:"target"`
}

// StationResponse is one station on the returned path.
type StationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PathResponse is the answer to a PathRequest.
type PathResponse struct {
	Stations []StationResponse `json:"stations"`
	Distance int               `json:"distance"`
	Fare     int               `json:"fare"`
	// Lines are the names of the lines ridden, in order of first use.
	Lines []string `json:"lines"`
}

// StationIDs returns the station IDs in path order.
func (r *PathResponse) StationIDs() []int64 {
	ids := make([]int64, len(r.Stations))
	for i, s := range r.Stations {
		ids[i] = s.ID
	}

	return ids
}
