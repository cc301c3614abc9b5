package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/trip/pkg/client"
	"tableflip.dev/trip/pkg/server"
	"tableflip.dev/trip/pkg/store"
	"tableflip.dev/trip/pkg/trip"
)

func newAPI(t *testing.T) *client.Client {
	t.Helper()
	s, err := store.Load(store.Dir(t.TempDir()))
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(server.NewRouter(s.Set(), log))
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/")
}

func draft() trip.Draft {
	return trip.Draft{
		Destination: "Florianópolis",
		StartsAt:    time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		OwnerName:   "Ana",
		OwnerEmail:  "ana@example.com",
		Invites:     []string{"bia@example.com"},
	}
}

func TestClientAgainstServer(t *testing.T) {
	ctx := context.Background()
	api := newAPI(t).Set()

	created, err := api.Trips.Create(ctx, draft())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := api.Trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Florianópolis", got.Destination)
	assert.True(t, got.StartsAt.Equal(draft().StartsAt))

	require.NoError(t, api.Trips.Update(ctx, trip.Update{
		ID:          created.ID,
		Destination: "Paris",
		StartsAt:    draft().StartsAt,
		EndsAt:      draft().StartsAt.AddDate(0, 0, 2),
	}))
	got, err = api.Trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Destination)

	require.NoError(t, api.Activities.Create(ctx, trip.NewActivity{
		TripID:   created.ID,
		Title:    "Praia",
		OccursAt: draft().StartsAt.Add(34 * time.Hour),
	}))
	acts, err := api.Activities.ListByTrip(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "Praia", acts[0].Title)

	require.NoError(t, api.Links.Create(ctx, trip.NewLink{TripID: created.ID, Title: "Reserva", URL: "https://example.com/r"}))
	links, err := api.Links.ListByTrip(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)

	people, err := api.Participants.ListByTrip(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, people, 2)
	invitee := people[1]

	require.NoError(t, api.Participants.Confirm(ctx, trip.Confirmation{
		ParticipantID: invitee.ID,
		Name:          "Bia",
		Email:         "bia@example.com",
	}))
	p, err := api.Participants.GetByID(ctx, invitee.ID)
	require.NoError(t, err)
	assert.True(t, p.IsConfirmed)
	assert.Equal(t, "Bia", p.Name)
}

func TestClientMapsErrors(t *testing.T) {
	ctx := context.Background()
	api := newAPI(t).Set()

	_, err := api.Trips.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, trip.ErrNotFound)

	created, err := api.Trips.Create(ctx, draft())
	require.NoError(t, err)

	err = api.Links.Create(ctx, trip.NewLink{TripID: created.ID, Title: "x", URL: "nope"})
	require.ErrorIs(t, err, trip.ErrValidation)
	assert.Contains(t, trip.Message(err), "url")

	err = api.Activities.Create(ctx, trip.NewActivity{
		TripID:   created.ID,
		Title:    "Tarde",
		OccursAt: draft().EndsAt.AddDate(0, 0, 5),
	})
	assert.ErrorIs(t, err, trip.ErrValidation)
}

func TestClientReportsServerFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := client.New(srv.URL).Set().Trips.GetByID(context.Background(), "t1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, trip.ErrNotFound)
	assert.NotErrorIs(t, err, trip.ErrValidation)
	assert.Contains(t, err.Error(), "502")
}

func TestClientHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAPI(t).Set().Trips.GetByID(ctx, "t1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientLeavesTimeoutToCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"trip":{"id":"t1","destination":"Lisboa"}}`)
	}))
	t.Cleanup(srv.Close)

	got, err := client.New(srv.URL).Set().Trips.GetByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Lisboa", got.Destination)

	impatient := client.New(srv.URL, client.WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	_, err = impatient.Set().Trips.GetByID(context.Background(), "t1")
	assert.Error(t, err)
}
