package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
)

var errRemote = errors.New("remote unavailable")

// fakeAPI is an in-memory service.Set that counts calls and fails on demand.
type fakeAPI struct {
	mu sync.Mutex

	trip         trip.Trip
	activities   []trip.Activity
	links        []trip.Link
	participants []trip.Participant

	calls   map[string]int
	fail    map[string]error
	explode map[string]bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		trip: trip.Trip{
			ID:          "t1",
			Destination: "Florianópolis, Brasil",
			StartsAt:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local),
			EndsAt:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
		},
		participants: []trip.Participant{
			{ID: "p1", TripID: "t1", Name: "Ana", Email: "ana@example.com", IsOwner: true, IsConfirmed: true},
			{ID: "p2", TripID: "t1", Email: "bia@example.com"},
		},
		calls:   map[string]int{},
		fail:    map[string]error{},
		explode: map[string]bool{},
	}
}

func (f *fakeAPI) set() service.Set {
	return service.Set{
		Trips:        fakeTrips{f},
		Activities:   fakeActivities{f},
		Links:        fakeLinks{f},
		Participants: fakeParticipants{f},
	}
}

func (f *fakeAPI) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	if f.explode[name] {
		panic(name + " exploded")
	}
	return f.fail[name]
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

type fakeTrips struct{ *fakeAPI }

func (f fakeTrips) GetByID(_ context.Context, id string) (trip.Trip, error) {
	if err := f.hit("trips.get"); err != nil {
		return trip.Trip{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.trip.ID {
		return trip.Trip{}, trip.ErrNotFound
	}
	return f.trip, nil
}

func (f fakeTrips) Update(_ context.Context, u trip.Update) error {
	if err := f.hit("trips.update"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trip.Destination = u.Destination
	f.trip.StartsAt = u.StartsAt
	f.trip.EndsAt = u.EndsAt
	return nil
}

func (f fakeTrips) Create(_ context.Context, d trip.Draft) (trip.Trip, error) {
	if err := f.hit("trips.create"); err != nil {
		return trip.Trip{}, err
	}
	return trip.Trip{ID: "t2", Destination: d.Destination, StartsAt: d.StartsAt, EndsAt: d.EndsAt}, nil
}

type fakeActivities struct{ *fakeAPI }

func (f fakeActivities) Create(_ context.Context, a trip.NewActivity) error {
	if err := f.hit("activities.create"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activities = append(f.activities, trip.Activity{ID: "a", TripID: a.TripID, Title: a.Title, OccursAt: a.OccursAt})
	return nil
}

func (f fakeActivities) ListByTrip(_ context.Context, _ string) ([]trip.Activity, error) {
	if err := f.hit("activities.list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]trip.Activity(nil), f.activities...), nil
}

type fakeLinks struct{ *fakeAPI }

func (f fakeLinks) Create(_ context.Context, l trip.NewLink) error {
	if err := f.hit("links.create"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links = append(f.links, trip.Link{ID: "l", TripID: l.TripID, Title: l.Title, URL: l.URL})
	return nil
}

func (f fakeLinks) ListByTrip(_ context.Context, _ string) ([]trip.Link, error) {
	if err := f.hit("links.list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]trip.Link(nil), f.links...), nil
}

type fakeParticipants struct{ *fakeAPI }

func (f fakeParticipants) ListByTrip(_ context.Context, _ string) ([]trip.Participant, error) {
	if err := f.hit("participants.list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]trip.Participant(nil), f.participants...), nil
}

func (f fakeParticipants) GetByID(_ context.Context, id string) (trip.Participant, error) {
	if err := f.hit("participants.get"); err != nil {
		return trip.Participant{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.participants {
		if p.ID == id {
			return p, nil
		}
	}
	return trip.Participant{}, trip.ErrNotFound
}

func (f fakeParticipants) Confirm(_ context.Context, c trip.Confirmation) error {
	if err := f.hit("participants.confirm"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.participants {
		if f.participants[i].ID == c.ParticipantID {
			f.participants[i].Name = c.Name
			f.participants[i].IsConfirmed = true
		}
	}
	return nil
}

// drain runs cmd and every follow-up command through c.Update until nothing is left.
func drain(t *testing.T, c *Controller, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("command chain did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case nil:
		default:
			queue = append(queue, c.Update(msg))
		}
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
}

func newLoaded(t *testing.T, api *fakeAPI, participantID string) *Controller {
	t.Helper()
	c := New(context.Background(), Options{
		TripID:        "t1",
		ParticipantID: participantID,
		Services:      api.set(),
		Now:           fixedNow,
	})
	drain(t, c, c.Init())
	return c
}
