package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/trip/pkg/trip"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load(Dir(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s
}

func day(d, h int) time.Time {
	return time.Date(2024, time.January, d, h, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, s *Store) trip.Trip {
	t.Helper()
	created, err := s.Set().Trips.Create(context.Background(), trip.Draft{
		Destination: "Florianópolis",
		StartsAt:    day(10, 0),
		EndsAt:      day(15, 0),
		OwnerName:   "Ana",
		OwnerEmail:  "ana@example.com",
		Invites:     []string{"bia@example.com", "caio@example.com"},
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	return created
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(Dir("")); err == nil {
		t.Fatal("expected an error for an empty base path")
	}
}

func TestTripRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	created := seed(t, s)

	got, err := s.Set().Trips.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get trip: %v", err)
	}
	if got.Destination != "Florianópolis" || !got.StartsAt.Equal(day(10, 0)) {
		t.Fatalf("unexpected trip: %+v", got)
	}

	err = s.Set().Trips.Update(ctx, trip.Update{ID: created.ID, Destination: "Paris", StartsAt: day(11, 0), EndsAt: day(12, 0)})
	if err != nil {
		t.Fatalf("update trip: %v", err)
	}
	got, _ = s.Set().Trips.GetByID(ctx, created.ID)
	if got.Destination != "Paris" || !got.EndsAt.Equal(day(12, 0)) {
		t.Fatalf("update not stored: %+v", got)
	}
}

func TestTripNotFound(t *testing.T) {
	s := newStore(t)
	_, err := s.Set().Trips.GetByID(context.Background(), "missing")
	if !errors.Is(err, trip.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	err = s.Set().Trips.Update(context.Background(), trip.Update{ID: "missing", Destination: "Paris", StartsAt: day(1, 0), EndsAt: day(2, 0)})
	if !errors.Is(err, trip.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}

func TestTripUpdateRejectsInvertedDates(t *testing.T) {
	s := newStore(t)
	created := seed(t, s)
	err := s.Set().Trips.Update(context.Background(), trip.Update{ID: created.ID, Destination: "Paris", StartsAt: day(12, 0), EndsAt: day(11, 0)})
	if !errors.Is(err, trip.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestActivitiesStayInsideTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	created := seed(t, s)
	acts := s.Set().Activities

	for _, a := range []trip.NewActivity{
		{TripID: created.ID, Title: "Jantar", OccursAt: day(12, 20)},
		{TripID: created.ID, Title: "Praia", OccursAt: day(12, 9)},
	} {
		if err := acts.Create(ctx, a); err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}
	err := acts.Create(ctx, trip.NewActivity{TripID: created.ID, Title: "Tarde", OccursAt: day(20, 9)})
	if !errors.Is(err, trip.ErrValidation) {
		t.Fatalf("expected ErrValidation outside the trip, got %v", err)
	}

	list, err := acts.ListByTrip(ctx, created.ID)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Praia" || list[1].Title != "Jantar" {
		t.Fatalf("unexpected activities: %+v", list)
	}
}

func TestLinksInCreationOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	created := seed(t, s)
	links := s.Set().Links

	for _, title := range []string{"Reserva", "Voo", "Aluguel"} {
		if err := links.Create(ctx, trip.NewLink{TripID: created.ID, Title: title, URL: "https://example.com/" + title}); err != nil {
			t.Fatalf("create link: %v", err)
		}
	}
	err := links.Create(ctx, trip.NewLink{TripID: created.ID, Title: "Bad", URL: "example.com"})
	if !errors.Is(err, trip.ErrValidation) {
		t.Fatalf("expected ErrValidation for a bare host, got %v", err)
	}

	list, err := links.ListByTrip(ctx, created.ID)
	if err != nil {
		t.Fatalf("list links: %v", err)
	}
	if len(list) != 3 || list[0].Title != "Reserva" || list[2].Title != "Aluguel" {
		t.Fatalf("unexpected links: %+v", list)
	}
}

func TestParticipantsAndConfirm(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	created := seed(t, s)
	people := s.Set().Participants

	list, err := people.ListByTrip(ctx, created.ID)
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(list) != 3 || !list[0].IsOwner || list[1].Email != "bia@example.com" {
		t.Fatalf("unexpected participants: %+v", list)
	}
	bia := list[1]
	if bia.IsConfirmed {
		t.Fatal("invitee should start unconfirmed")
	}

	err = people.Confirm(ctx, trip.Confirmation{ParticipantID: bia.ID, Name: "Bia", Email: "someone@example.com"})
	if !errors.Is(err, trip.ErrValidation) {
		t.Fatalf("expected ErrValidation for a foreign e-mail, got %v", err)
	}
	if err := people.Confirm(ctx, trip.Confirmation{ParticipantID: bia.ID, Name: "Bia", Email: "BIA@example.com"}); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	got, err := people.GetByID(ctx, bia.ID)
	if err != nil {
		t.Fatalf("get participant: %v", err)
	}
	if !got.IsConfirmed || got.Name != "Bia" {
		t.Fatalf("confirmation not stored: %+v", got)
	}

	if _, err := people.GetByID(ctx, "missing"); !errors.Is(err, trip.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateValidatesDraft(t *testing.T) {
	s := newStore(t)
	_, err := s.Set().Trips.Create(context.Background(), trip.Draft{Destination: "Rio", StartsAt: day(1, 0), EndsAt: day(2, 0)})
	if !errors.Is(err, trip.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
