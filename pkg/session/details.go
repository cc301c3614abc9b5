package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/trip/pkg/overlay"
	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/trip"
	"tableflip.dev/trip/pkg/validate"
)

const (
	titleNewLink   = "Cadastrar link"
	msgLinkFields  = "Preencha título e URL do link."
	msgLinkURL     = "Link inválido!"
	msgLinkCreated = "Link cadastrado com sucesso!"
)

// Details is the details sub-view: important links and the guest list.
type Details struct {
	ctx    context.Context
	svc    service.Set
	log    *slog.Logger
	tripID string

	Links        *LinkForm
	Participants []trip.Participant
	Loading      bool
}

func newDetails(ctx context.Context, svc service.Set, log *slog.Logger, alerts *Alerts, tripID string, urlValid func(string) bool) *Details {
	return &Details{
		ctx:    ctx,
		svc:    svc,
		log:    log,
		tripID: tripID,
		Links: &LinkForm{
			ctx:      ctx,
			svc:      svc.Links,
			log:      log,
			alerts:   alerts,
			tripID:   tripID,
			urlValid: urlValid,
		},
	}
}

// Reload fetches links and participants concurrently.
func (d *Details) Reload() tea.Cmd {
	if d.tripID == "" || d.Loading {
		return nil
	}
	d.Loading = true
	ctx, svc, id := d.ctx, d.svc, d.tripID
	return func() tea.Msg {
		var msg DetailsLoadedMsg
		msg.Err = settle(func() error {
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return settle(func() error {
					ls, err := svc.Links.ListByTrip(gctx, id)
					if err != nil {
						return fmt.Errorf("list links: %w", err)
					}
					msg.Links = ls
					return nil
				})
			})
			g.Go(func() error {
				return settle(func() error {
					ps, err := svc.Participants.ListByTrip(gctx, id)
					if err != nil {
						return fmt.Errorf("list participants: %w", err)
					}
					msg.Participants = ps
					return nil
				})
			})
			return g.Wait()
		})
		return msg
	}
}

// Update applies details result messages.
func (d *Details) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DetailsLoadedMsg:
		d.Loading = false
		if msg.Err != nil {
			d.log.Error("load details failed", slog.String("error", msg.Err.Error()))
			return nil
		}
		d.Links.Links = msg.Links
		d.Participants = msg.Participants
	case LinkCreatedMsg:
		d.Links.settled(msg)
	}
	return nil
}

// Confirmed counts the participants that confirmed attendance.
func (d *Details) Confirmed() int {
	n := 0
	for _, p := range d.Participants {
		if p.IsConfirmed {
			n++
		}
	}
	return n
}

// LinkForm is the new-link form of the details view.
type LinkForm struct {
	ctx      context.Context
	svc      service.Links
	log      *slog.Logger
	alerts   *Alerts
	tripID   string
	urlValid func(string) bool

	Overlay overlay.Slot[LinkOverlay]

	Title string
	URL   string

	Creating bool
	Links    []trip.Link
}

// Open shows the new-link form.
func (f *LinkForm) Open() {
	if f.tripID == "" || f.Creating {
		return
	}
	f.Overlay.Open(NewLink)
}

// Close dismisses the form and drops its fields, unless it is being saved.
func (f *LinkForm) Close() {
	if f.Overlay.IsOpen() && !f.Creating {
		f.Overlay.Close()
		f.Reset()
	}
}

// Reset clears the form fields.
func (f *LinkForm) Reset() {
	f.Title = ""
	f.URL = ""
}

// Validate checks the fields and returns the link that would be created.
func (f *LinkForm) Validate() (trip.NewLink, error) {
	title, url := strings.TrimSpace(f.Title), strings.TrimSpace(f.URL)
	if !validate.Required(title) || !validate.Required(url) {
		return trip.NewLink{}, trip.Invalid(msgLinkFields)
	}
	if !f.urlValid(url) {
		return trip.NewLink{}, trip.Invalid(msgLinkURL)
	}
	return trip.NewLink{TripID: f.tripID, Title: title, URL: url}, nil
}

// Submit creates the link and re-fetches the list.
func (f *LinkForm) Submit() tea.Cmd {
	if f.Creating || f.tripID == "" {
		return nil
	}
	l, err := f.Validate()
	if err != nil {
		f.alerts.Show(titleNewLink, trip.Message(err))
		return nil
	}
	f.Creating = true

	ctx, svc := f.ctx, f.svc
	return func() tea.Msg {
		var msg LinkCreatedMsg
		msg.Err = settle(func() error { return svc.Create(ctx, l) })
		if msg.Err != nil {
			return msg
		}
		msg.ReloadErr = settle(func() error {
			ls, err := svc.ListByTrip(ctx, l.TripID)
			msg.Links = ls
			return err
		})
		return msg
	}
}

func (f *LinkForm) settled(msg LinkCreatedMsg) {
	f.Creating = false
	if msg.Err != nil {
		f.log.Error("create link failed", slog.String("error", msg.Err.Error()))
		return
	}
	if f.Overlay.IsOpen() {
		f.Overlay.Close()
		f.Reset()
	}
	f.alerts.Show(titleNewLink, msgLinkCreated)
	if msg.ReloadErr != nil {
		f.log.Error("reload links failed", slog.String("error", msg.ReloadErr.Error()))
		return
	}
	f.Links = msg.Links
}
