// Package client talks to the trip API over HTTP and implements the data services
// of a trip session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
)

// Client is a trip API client. Use Set to hand it to a session.
type Client struct {
	base string
	http *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. The default sets no timeout;
// callers that want one bring their own client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Set exposes the client as the data services of a trip session.
func (c *Client) Set() service.Set {
	return service.Set{
		Trips:        Trips{c},
		Activities:   Activities{c},
		Links:        Links{c},
		Participants: Participants{c},
	}
}

type tripBody struct {
	Trip trip.Trip `json:"trip"`
}

type activitiesBody struct {
	Activities []trip.Activity `json:"activities"`
}

type linksBody struct {
	Links []trip.Link `json:"links"`
}

type participantsBody struct {
	Participants []trip.Participant `json:"participants"`
}

type participantBody struct {
	Participant trip.Participant `json:"participant"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Trips implements service.Trips.
type Trips struct{ c *Client }

// GetByID fetches GET /trips/{id}.
func (t Trips) GetByID(ctx context.Context, id string) (trip.Trip, error) {
	var body tripBody
	err := t.c.do(ctx, http.MethodGet, path("trips", id), nil, &body)
	return body.Trip, err
}

// Update sends PUT /trips/{id}.
func (t Trips) Update(ctx context.Context, u trip.Update) error {
	return t.c.do(ctx, http.MethodPut, path("trips", u.ID), u, nil)
}

// Create sends POST /trips.
func (t Trips) Create(ctx context.Context, d trip.Draft) (trip.Trip, error) {
	var body tripBody
	err := t.c.do(ctx, http.MethodPost, "/trips", d, &body)
	return body.Trip, err
}

// Activities implements service.Activities.
type Activities struct{ c *Client }

// Create sends POST /trips/{id}/activities.
func (a Activities) Create(ctx context.Context, in trip.NewActivity) error {
	return a.c.do(ctx, http.MethodPost, path("trips", in.TripID, "activities"), in, nil)
}

// ListByTrip fetches GET /trips/{id}/activities.
func (a Activities) ListByTrip(ctx context.Context, tripID string) ([]trip.Activity, error) {
	var body activitiesBody
	err := a.c.do(ctx, http.MethodGet, path("trips", tripID, "activities"), nil, &body)
	return body.Activities, err
}

// Links implements service.Links.
type Links struct{ c *Client }

// Create sends POST /trips/{id}/links.
func (l Links) Create(ctx context.Context, in trip.NewLink) error {
	return l.c.do(ctx, http.MethodPost, path("trips", in.TripID, "links"), in, nil)
}

// ListByTrip fetches GET /trips/{id}/links.
func (l Links) ListByTrip(ctx context.Context, tripID string) ([]trip.Link, error) {
	var body linksBody
	err := l.c.do(ctx, http.MethodGet, path("trips", tripID, "links"), nil, &body)
	return body.Links, err
}

// Participants implements service.Participants.
type Participants struct{ c *Client }

// ListByTrip fetches GET /trips/{id}/participants.
func (p Participants) ListByTrip(ctx context.Context, tripID string) ([]trip.Participant, error) {
	var body participantsBody
	err := p.c.do(ctx, http.MethodGet, path("trips", tripID, "participants"), nil, &body)
	return body.Participants, err
}

// GetByID fetches GET /participants/{id}.
func (p Participants) GetByID(ctx context.Context, id string) (trip.Participant, error) {
	var body participantBody
	err := p.c.do(ctx, http.MethodGet, path("participants", id), nil, &body)
	return body.Participant, err
}

// Confirm sends POST /participants/{id}/confirm.
func (p Participants) Confirm(ctx context.Context, c trip.Confirmation) error {
	return p.c.do(ctx, http.MethodPost, path("participants", c.ParticipantID, "confirm"), c, nil)
}

func (c *Client) do(ctx context.Context, method, p string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: encode: %w", method, p, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+p, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, p, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, p, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(method, p, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, p, err)
	}
	return nil
}

// statusError maps 404 to trip.ErrNotFound and 400/422 to trip.ErrValidation.
func statusError(method, p string, resp *http.Response) error {
	var e errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&e)
	msg := e.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, p, trip.ErrNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return trip.Invalid("%s", msg)
	}
	return fmt.Errorf("%s %s: %d %s", method, p, resp.StatusCode, msg)
}

func path(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, s := range parts {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}
