package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
)

const (
	kindTrips        = "trips"
	kindActivities   = "activities"
	kindLinks        = "links"
	kindParticipants = "participants"

	sep = ":"
)

// Store keeps trips and their activities, links and participants as JSON files
// under a base path. Trips live at trips/<id>; everything else at
// <kind>/<trip id>/<id>.
type Store struct {
	mu       sync.RWMutex
	d        *diskv.Diskv
	basePath string
}

// Load creates a Store backed by diskv using the provided config.
func Load(cfg Config) (*Store, error) {
	if cfg == nil || strings.TrimSpace(cfg.BasePath()) == "" {
		return nil, fmt.Errorf("store: base path required")
	}

	basePath := cfg.BasePath()
	return &Store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath returns the directory the store writes to.
func (s *Store) BasePath() string {
	return s.basePath
}

// Set exposes the store as the data services of a trip session.
func (s *Store) Set() service.Set {
	return service.Set{
		Trips:        Trips{s},
		Activities:   Activities{s},
		Links:        Links{s},
		Participants: Participants{s},
	}
}

// Trips implements service.Trips.
type Trips struct{ s *Store }

// GetByID returns the trip or trip.ErrNotFound.
func (t Trips) GetByID(_ context.Context, id string) (trip.Trip, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.s.trip(id)
}

// Update changes destination and dates of an existing trip.
func (t Trips) Update(_ context.Context, u trip.Update) error {
	if err := u.Validate(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	cur, err := t.s.trip(u.ID)
	if err != nil {
		return err
	}
	cur.Destination = u.Destination
	cur.StartsAt = u.StartsAt
	cur.EndsAt = u.EndsAt
	return t.s.put(key(kindTrips, cur.ID), cur)
}

// Create stores a new trip, its owner and one pending participant per invite.
func (t Trips) Create(_ context.Context, d trip.Draft) (trip.Trip, error) {
	if err := d.Validate(); err != nil {
		return trip.Trip{}, err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	created := trip.Trip{
		ID:          newID(),
		Destination: d.Destination,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
	}
	if err := t.s.put(key(kindTrips, created.ID), created); err != nil {
		return trip.Trip{}, err
	}

	people := []trip.Participant{{
		TripID:      created.ID,
		Name:        d.OwnerName,
		Email:       d.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	}}
	for _, email := range d.Invites {
		people = append(people, trip.Participant{TripID: created.ID, Email: email})
	}
	for _, p := range people {
		p.ID = newID()
		if err := t.s.put(key(kindParticipants, created.ID, p.ID), p); err != nil {
			return trip.Trip{}, err
		}
	}
	return created, nil
}

// Activities implements service.Activities.
type Activities struct{ s *Store }

// Create stores an activity; it must fall within the trip dates.
func (a Activities) Create(_ context.Context, in trip.NewActivity) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	t, err := a.s.trip(in.TripID)
	if err != nil {
		return err
	}
	if err := in.ValidateFor(t); err != nil {
		return err
	}
	rec := trip.Activity{ID: newID(), TripID: in.TripID, Title: in.Title, OccursAt: in.OccursAt}
	return a.s.put(key(kindActivities, rec.TripID, rec.ID), rec)
}

// ListByTrip returns the trip's activities ordered by time.
func (a Activities) ListByTrip(ctx context.Context, tripID string) ([]trip.Activity, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	if _, err := a.s.trip(tripID); err != nil {
		return nil, err
	}
	list, err := readAll[trip.Activity](ctx, a.s, key(kindActivities, tripID, ""))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].OccursAt.Equal(list[j].OccursAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].OccursAt.Before(list[j].OccursAt)
	})
	return list, nil
}

// Links implements service.Links.
type Links struct{ s *Store }

// Create stores a link.
func (l Links) Create(_ context.Context, in trip.NewLink) error {
	if err := in.Validate(); err != nil {
		return err
	}
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	if _, err := l.s.trip(in.TripID); err != nil {
		return err
	}
	rec := trip.Link{ID: newID(), TripID: in.TripID, Title: in.Title, URL: in.URL}
	return l.s.put(key(kindLinks, rec.TripID, rec.ID), rec)
}

// ListByTrip returns the trip's links in creation order.
func (l Links) ListByTrip(ctx context.Context, tripID string) ([]trip.Link, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()

	if _, err := l.s.trip(tripID); err != nil {
		return nil, err
	}
	list, err := readAll[trip.Link](ctx, l.s, key(kindLinks, tripID, ""))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Participants implements service.Participants.
type Participants struct{ s *Store }

// ListByTrip returns the owner first, then the invitees in invitation order.
func (p Participants) ListByTrip(ctx context.Context, tripID string) ([]trip.Participant, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	if _, err := p.s.trip(tripID); err != nil {
		return nil, err
	}
	list, err := readAll[trip.Participant](ctx, p.s, key(kindParticipants, tripID, ""))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].IsOwner != list[j].IsOwner {
			return list[i].IsOwner
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// GetByID finds a participant across all trips.
func (p Participants) GetByID(ctx context.Context, id string) (trip.Participant, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	_, rec, err := p.s.participant(ctx, id)
	return rec, err
}

// Confirm marks the invitee as attending. The e-mail must match the invitation.
func (p Participants) Confirm(ctx context.Context, c trip.Confirmation) error {
	if err := c.Validate(); err != nil {
		return err
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	k, rec, err := p.s.participant(ctx, c.ParticipantID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(rec.Email), strings.TrimSpace(c.Email)) {
		return trip.Invalid("email: does not match the invitation.")
	}
	rec.Name = c.Name
	rec.IsConfirmed = true
	return p.s.put(k, rec)
}

func (s *Store) trip(id string) (trip.Trip, error) {
	var t trip.Trip
	if strings.TrimSpace(id) == "" || strings.Contains(id, sep) {
		return t, fmt.Errorf("trip %q: %w", id, trip.ErrNotFound)
	}
	if err := s.get(key(kindTrips, id), &t); err != nil {
		return t, fmt.Errorf("trip %q: %w", id, err)
	}
	return t, nil
}

func (s *Store) participant(ctx context.Context, id string) (string, trip.Participant, error) {
	var p trip.Participant
	if strings.TrimSpace(id) == "" {
		return "", p, fmt.Errorf("participant %q: %w", id, trip.ErrNotFound)
	}
	prefix := kindParticipants + sep
	found := ""
	// Drain the walk so the diskv goroutine never blocks on an abandoned channel.
	for k := range s.d.Keys(ctx.Done()) {
		if found == "" && strings.HasPrefix(k, prefix) && strings.HasSuffix(k, sep+id) {
			found = k
		}
	}
	if found == "" {
		return "", p, fmt.Errorf("participant %q: %w", id, trip.ErrNotFound)
	}
	if err := s.get(found, &p); err != nil {
		return "", p, err
	}
	return found, p, nil
}

func (s *Store) get(k string, v any) error {
	if !s.d.Has(k) {
		return trip.ErrNotFound
	}
	data, err := s.d.Read(k)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *Store) put(k string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.d.Write(k, data)
}

func readAll[T any](ctx context.Context, s *Store, prefix string) ([]T, error) {
	all := make([]T, 0)
	for k := range s.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		var v T
		if err := s.get(k, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		all = append(all, v)
	}
	return all, ctx.Err()
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// key joins parts into `kind:trip:id`.
func key(parts ...string) string {
	return strings.Join(parts, sep)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, sep)
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pathKey.Path...), pathKey.FileName), sep)
}
