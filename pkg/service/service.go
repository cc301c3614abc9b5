// Package service declares the data services the trip screens depend on. The HTTP
// client and the local store both implement them.
package service

import (
	"context"

	"tableflip.dev/trip/pkg/trip"
)

// Trips reads and changes trips.
type Trips interface {
	GetByID(ctx context.Context, id string) (trip.Trip, error)
	Update(ctx context.Context, u trip.Update) error
	Create(ctx context.Context, d trip.Draft) (trip.Trip, error)
}

// Activities creates and lists a trip's activities.
type Activities interface {
	Create(ctx context.Context, a trip.NewActivity) error
	ListByTrip(ctx context.Context, tripID string) ([]trip.Activity, error)
}

// Links creates and lists a trip's links.
type Links interface {
	Create(ctx context.Context, l trip.NewLink) error
	ListByTrip(ctx context.Context, tripID string) ([]trip.Link, error)
}

// Participants lists invitees and confirms attendance.
type Participants interface {
	ListByTrip(ctx context.Context, tripID string) ([]trip.Participant, error)
	GetByID(ctx context.Context, id string) (trip.Participant, error)
	Confirm(ctx context.Context, c trip.Confirmation) error
}

// Set bundles every service a trip session needs.
type Set struct {
	Trips        Trips
	Activities   Activities
	Links        Links
	Participants Participants
}
