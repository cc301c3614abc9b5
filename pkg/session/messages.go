package session

import "tableflip.dev/trip/pkg/trip"

// NavigateBackMsg asks the host to leave the trip screen.
type NavigateBackMsg struct{}

// TripLoadedMsg carries the result of fetching the trip.
type TripLoadedMsg struct {
	Trip           trip.Trip
	Participant    *trip.Participant
	ParticipantErr error
	Err            error
}

// TripUpdatedMsg carries the result of updating the trip and re-fetching it.
type TripUpdatedMsg struct {
	Trip      trip.Trip
	Err       error
	ReloadErr error
}

// ActivitiesLoadedMsg carries a fresh activity list.
type ActivitiesLoadedMsg struct {
	Activities []trip.Activity
	Err        error
}

// ActivityCreatedMsg carries the result of creating an activity and re-fetching
// the list.
type ActivityCreatedMsg struct {
	Activities []trip.Activity
	Err        error
	ReloadErr  error
}

// DetailsLoadedMsg carries links and participants fetched together.
type DetailsLoadedMsg struct {
	Links        []trip.Link
	Participants []trip.Participant
	Err          error
}

// LinkCreatedMsg carries the result of creating a link and re-fetching the list.
type LinkCreatedMsg struct {
	Links     []trip.Link
	Err       error
	ReloadErr error
}

// AttendanceConfirmedMsg carries the result of confirming attendance and
// re-fetching the participants.
type AttendanceConfirmedMsg struct {
	Participants []trip.Participant
	Err          error
	ReloadErr    error
}
