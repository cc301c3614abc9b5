// Package session holds the state machines behind the trip screen: the trip
// controller, its forms and the overlays they open. All state changes happen in
// Update on the Bubble Tea loop; data service calls run in tea.Cmds that only
// return result messages.
package session

import (
	"fmt"
	"io"
	"log/slog"
)

// ViewMode selects the sub-view under the trip header.
type ViewMode int

const (
	// ModeActivities shows the activity list.
	ModeActivities ViewMode = iota
	// ModeDetails shows links and participants.
	ModeDetails
)

// Toggle returns the other mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ModeActivities {
		return ModeDetails
	}
	return ModeActivities
}

func (m ViewMode) String() string {
	switch m {
	case ModeActivities:
		return "activities"
	case ModeDetails:
		return "details"
	}
	return fmt.Sprintf("ViewMode(%d)", int(m))
}

// TripOverlay enumerates the overlays of the trip screen region.
type TripOverlay int

const (
	TripNone TripOverlay = iota
	EditTrip
	TripCalendar
	AttendanceConfirm
)

func (o TripOverlay) String() string {
	switch o {
	case TripNone:
		return "none"
	case EditTrip:
		return "edit-trip"
	case TripCalendar:
		return "trip-calendar"
	case AttendanceConfirm:
		return "attendance-confirm"
	}
	return fmt.Sprintf("TripOverlay(%d)", int(o))
}

// ActivityOverlay enumerates the overlays of the activities view.
type ActivityOverlay int

const (
	ActivityNone ActivityOverlay = iota
	NewActivity
	ActivityCalendar
)

func (o ActivityOverlay) String() string {
	switch o {
	case ActivityNone:
		return "none"
	case NewActivity:
		return "new-activity"
	case ActivityCalendar:
		return "activity-calendar"
	}
	return fmt.Sprintf("ActivityOverlay(%d)", int(o))
}

// LinkOverlay enumerates the overlays of the details view.
type LinkOverlay int

const (
	LinkNone LinkOverlay = iota
	NewLink
)

func (o LinkOverlay) String() string {
	switch o {
	case LinkNone:
		return "none"
	case NewLink:
		return "new-link"
	}
	return fmt.Sprintf("LinkOverlay(%d)", int(o))
}

// Alert is a message the user has to acknowledge.
type Alert struct {
	Title   string
	Message string
}

// Alerts queues alerts in the order they were raised.
type Alerts struct {
	queue []Alert
}

// Show queues an alert.
func (a *Alerts) Show(title, message string) {
	a.queue = append(a.queue, Alert{Title: title, Message: message})
}

// Current returns the oldest unacknowledged alert.
func (a *Alerts) Current() (Alert, bool) {
	if len(a.queue) == 0 {
		return Alert{}, false
	}
	return a.queue[0], true
}

// Dismiss acknowledges the current alert.
func (a *Alerts) Dismiss() {
	if len(a.queue) > 0 {
		a.queue = a.queue[1:]
	}
}

// Len returns the number of pending alerts.
func (a *Alerts) Len() int {
	return len(a.queue)
}

// settle runs fn and converts a panic into an error so a result message is always
// delivered and the matching loading flag always clears.
func settle(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return fn()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
