// SPDX-License-Identifier: MIT

package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/katalvlaran/metropath/pathservice"
	"github.com/katalvlaran/metropath/subway"
)

// RiderAgeHeader carries the age of a rider already authenticated upstream.
// Absent means anonymous.
const RiderAgeHeader = "X-Rider-Age"

func pathsHandler(logger *slog.Logger, svc PathCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := RequestIDFrom(r.Context())
		badRequest := func(msg string) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, RequestID: reqID})
		}

		q := r.URL.Query()
		source, err := parseStationID(q.Get("source"))
		if err != nil {
			badRequest(fmt.Sprintf("source: %v", err))
			return
		}
		target, err := parseStationID(q.Get("target"))
		if err != nil {
			badRequest(fmt.Sprintf("target: %v", err))
			return
		}
		rider, err := riderFrom(r)
		if err != nil {
			badRequest(err.Error())
			return
		}

		resp, err := svc.CalculatePath(r.Context(), rider, pathservice.PathRequest{Source: source, Target: target})
		if err != nil {
			var pe *pathservice.PathCalculateError
			if errors.As(err, &pe) {
				status := http.StatusBadRequest
				if pe.Kind == pathservice.KindStationNotFound {
					status = http.StatusNotFound
				}
				respondJSON(w, status, ErrorResponse{Error: pe.Msg, Kind: string(pe.Kind), RequestID: reqID})
				return
			}

			logger.Error("http.paths_failed", "request_id", reqID, "error", err)
			respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error", RequestID: reqID})
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

func parseStationID(v string) (int64, error) {
	if v == "" {
		return 0, errors.New("is required")
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a station id", v)
	}

	return id, nil
}

func riderFrom(r *http.Request) (subway.RiderContext, error) {
	v := r.Header.Get(RiderAgeHeader)
	if v == "" {
		return subway.Anonymous{}, nil
	}
	age, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not an age", RiderAgeHeader, v)
	}
	rider, err := subway.AuthenticatedAge(age)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", RiderAgeHeader, err)
	}

	return rider, nil
}
