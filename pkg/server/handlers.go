package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
)

// maxBody caps request bodies; every payload is a handful of short fields.
const maxBody = 64 << 10

type handler struct {
	svc service.Set
	log *slog.Logger
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createTrip handles POST /trips.
func (h *handler) createTrip(w http.ResponseWriter, r *http.Request) {
	var d trip.Draft
	if !h.decode(w, r, &d) {
		return
	}
	created, err := h.svc.Trips.Create(r.Context(), d)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, TripResponse{Trip: created})
}

// getTrip handles GET /trips/{tripID}.
func (h *handler) getTrip(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Trips.GetByID(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TripResponse{Trip: t})
}

// updateTrip handles PUT /trips/{tripID}.
func (h *handler) updateTrip(w http.ResponseWriter, r *http.Request) {
	var u trip.Update
	if !h.decode(w, r, &u) {
		return
	}
	u.ID = chi.URLParam(r, "tripID")
	if err := h.svc.Trips.Update(r.Context(), u); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listActivities handles GET /trips/{tripID}/activities.
func (h *handler) listActivities(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Activities.ListByTrip(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ActivitiesResponse{Activities: list})
}

// createActivity handles POST /trips/{tripID}/activities.
func (h *handler) createActivity(w http.ResponseWriter, r *http.Request) {
	var a trip.NewActivity
	if !h.decode(w, r, &a) {
		return
	}
	a.TripID = chi.URLParam(r, "tripID")
	if err := h.svc.Activities.Create(r.Context(), a); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// listLinks handles GET /trips/{tripID}/links.
func (h *handler) listLinks(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Links.ListByTrip(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LinksResponse{Links: list})
}

// createLink handles POST /trips/{tripID}/links.
func (h *handler) createLink(w http.ResponseWriter, r *http.Request) {
	var l trip.NewLink
	if !h.decode(w, r, &l) {
		return
	}
	l.TripID = chi.URLParam(r, "tripID")
	if err := h.svc.Links.Create(r.Context(), l); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// listParticipants handles GET /trips/{tripID}/participants.
func (h *handler) listParticipants(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Participants.ListByTrip(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ParticipantsResponse{Participants: list})
}

// getParticipant handles GET /participants/{participantID}.
func (h *handler) getParticipant(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Participants.GetByID(r.Context(), chi.URLParam(r, "participantID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ParticipantResponse{Participant: p})
}

// confirmParticipant handles POST /participants/{participantID}/confirm.
func (h *handler) confirmParticipant(w http.ResponseWriter, r *http.Request) {
	var c trip.Confirmation
	if !h.decode(w, r, &c) {
		return
	}
	c.ParticipantID = chi.URLParam(r, "participantID")
	if err := h.svc.Participants.Confirm(r.Context(), c); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return false
	}
	return true
}

// fail maps domain errors to status codes; anything unknown is a 500.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, trip.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, trip.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody(trip.Message(err)))
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
