// Package trip holds the trip planning domain types shared by the screens, the
// CLI and the data services.
package trip

import (
	"time"

	"tableflip.dev/trip/pkg/daterange"
)

// Trip is the authoritative trip record as served by the trip API.
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// Window is the inclusive range of local days the trip covers.
func (t Trip) Window() daterange.Bounds {
	var b daterange.Bounds
	if !t.StartsAt.IsZero() {
		b.Min = daterange.DayOf(local(t.StartsAt))
	}
	if !t.EndsAt.IsZero() {
		b.Max = daterange.DayOf(local(t.EndsAt))
	}
	return b
}

// Update is the payload for changing destination and dates.
type Update struct {
	ID          string    `json:"-"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// Draft is the payload for creating a trip.
type Draft struct {
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	OwnerName   string    `json:"owner_name"`
	OwnerEmail  string    `json:"owner_email"`
	Invites     []string  `json:"emails_to_invite"`
}

// Activity is something planned at a given time during the trip.
type Activity struct {
	ID       string    `json:"id"`
	TripID   string    `json:"trip_id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// NewActivity is the payload for creating an activity.
type NewActivity struct {
	TripID   string    `json:"-"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// Link is a useful URL attached to the trip.
type Link struct {
	ID     string `json:"id"`
	TripID string `json:"trip_id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// NewLink is the payload for creating a link.
type NewLink struct {
	TripID string `json:"-"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// Participant is someone invited to the trip.
type Participant struct {
	ID          string `json:"id"`
	TripID      string `json:"trip_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
	IsOwner     bool   `json:"is_owner"`
}

// Confirmation is the payload an invitee sends to confirm attendance.
type Confirmation struct {
	ParticipantID string `json:"-"`
	Name          string `json:"name"`
	Email         string `json:"email"`
}
