package headless

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/trip/pkg/session"
	"tableflip.dev/trip/pkg/trip"
)

type ping int

func TestDrainFollowsBatchesAndReplies(t *testing.T) {
	emit := func(n int) tea.Cmd { return func() tea.Msg { return ping(n) } }
	update := func(msg tea.Msg) tea.Cmd {
		if p := msg.(ping); p < 3 {
			return emit(int(p) + 10)
		}
		return nil
	}

	msgs, err := Drain(tea.Batch(emit(1), emit(2), func() tea.Msg { return nil }), update)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	want := []tea.Msg{ping(1), ping(2), ping(11), ping(12)}
	if len(msgs) != len(want) {
		t.Fatalf("expected %v, got %v", want, msgs)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, msgs)
		}
	}
}

func TestDrainStopsRunawayChains(t *testing.T) {
	var loop tea.Cmd
	loop = func() tea.Msg { return ping(99) }
	_, err := Drain(loop, func(tea.Msg) tea.Cmd { return loop })
	if !errors.Is(err, ErrRunaway) {
		t.Fatalf("expected ErrRunaway, got %v", err)
	}
}

func TestFailure(t *testing.T) {
	boom := errors.New("boom")
	msgs := []tea.Msg{
		session.ActivitiesLoadedMsg{},
		session.LinkCreatedMsg{Err: boom},
		session.DetailsLoadedMsg{Err: errors.New("later")},
	}
	if err := Failure(msgs); !errors.Is(err, boom) {
		t.Fatalf("expected the first failure, got %v", err)
	}
	if err := Failure([]tea.Msg{session.NavigateBackMsg{}}); !errors.Is(err, trip.ErrMissingIdentifier) {
		t.Fatalf("expected ErrMissingIdentifier, got %v", err)
	}
	if err := Failure(nil); err != nil {
		t.Fatalf("expected no failure, got %v", err)
	}
}
