package trip

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"tableflip.dev/trip/pkg/daterange"
)

var (
	errDatesOrder  = errors.New("must not be before starts_at")
	errOutsideTrip = errors.New("must fall within the trip dates")
	errHTTPScheme  = errors.New("must start with http:// or https://")
)

// Validate checks a trip creation payload.
func (d Draft) Validate() error {
	return invalid(validation.ValidateStruct(&d,
		validation.Field(&d.Destination, validation.Required, validation.Length(4, 0)),
		validation.Field(&d.StartsAt, validation.Required),
		validation.Field(&d.EndsAt, validation.Required, validation.By(notBefore(d.StartsAt))),
		validation.Field(&d.OwnerName, validation.Required),
		validation.Field(&d.OwnerEmail, validation.Required, is.EmailFormat),
		validation.Field(&d.Invites, validation.Each(is.EmailFormat)),
	))
}

// Validate checks a trip update payload.
func (u Update) Validate() error {
	return invalid(validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Destination, validation.Required),
		validation.Field(&u.StartsAt, validation.Required),
		validation.Field(&u.EndsAt, validation.Required, validation.By(notBefore(u.StartsAt))),
	))
}

// ValidateFor checks an activity payload against the trip it belongs to.
func (a NewActivity) ValidateFor(t Trip) error {
	return invalid(validation.ValidateStruct(&a,
		validation.Field(&a.TripID, validation.Required),
		validation.Field(&a.Title, validation.Required),
		validation.Field(&a.OccursAt, validation.Required, validation.By(within(t))),
	))
}

// Validate checks a link payload.
func (l NewLink) Validate() error {
	return invalid(validation.ValidateStruct(&l,
		validation.Field(&l.TripID, validation.Required),
		validation.Field(&l.Title, validation.Required),
		validation.Field(&l.URL, validation.Required, validation.By(httpURL), is.URL),
	))
}

// Validate checks an attendance confirmation.
func (c Confirmation) Validate() error {
	return invalid(validation.ValidateStruct(&c,
		validation.Field(&c.ParticipantID, validation.Required),
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Email, validation.Required, is.EmailFormat),
	))
}

func notBefore(start time.Time) validation.RuleFunc {
	return func(value any) error {
		end, _ := value.(time.Time)
		if !start.IsZero() && !end.IsZero() && end.Before(start) {
			return errDatesOrder
		}
		return nil
	}
}

func within(t Trip) validation.RuleFunc {
	return func(value any) error {
		at, _ := value.(time.Time)
		if at.IsZero() {
			return nil
		}
		if !t.Window().Contains(daterange.DayOf(local(at))) {
			return errOutsideTrip
		}
		return nil
	}
}

func httpURL(value any) error {
	s, _ := value.(string)
	if s == "" || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return nil
	}
	return errHTTPScheme
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return Invalid("%s", err.Error())
}
