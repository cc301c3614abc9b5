package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tableflip.dev/trip/pkg/trip"
)

// TripResponse wraps a single trip.
type TripResponse struct {
	Trip trip.Trip `json:"trip"`
}

// ActivitiesResponse wraps a trip's activities.
type ActivitiesResponse struct {
	Activities []trip.Activity `json:"activities"`
}

// LinksResponse wraps a trip's links.
type LinksResponse struct {
	Links []trip.Link `json:"links"`
}

// ParticipantsResponse wraps a trip's participants.
type ParticipantsResponse struct {
	Participants []trip.Participant `json:"participants"`
}

// ParticipantResponse wraps a single participant.
type ParticipantResponse struct {
	Participant trip.Participant `json:"participant"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

func errorBody(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}
