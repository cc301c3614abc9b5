package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/trip/pkg/trip"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func localEnv(t *testing.T) {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	t.Setenv("TRIP_CONFIG_PATH", dir)
	t.Setenv("TRIP_DATA_PATH", filepath.Join(dir, "data"))
	t.Setenv("TRIP_LOG_FILE", filepath.Join(dir, "trip.log"))
}

func TestCreateShowAndPlanLocally(t *testing.T) {
	localEnv(t)
	start := time.Now().AddDate(1, 0, 0)
	from := start.Format("2006-01-02")
	to := start.AddDate(0, 0, 3).Format("2006-01-02")

	out, err := execute(t, "trips", "create", "--local",
		"--destination", "Lisboa", "--from", from, "--to", to,
		"--owner-name", "Ana", "--owner-email", "ana@example.com",
		"--invite", "bia@example.com")
	require.NoError(t, err)
	require.Contains(t, out, "Viagem criada: ")
	id := strings.TrimSpace(out[strings.Index(out, ": ")+2:])

	_, err = execute(t, "activities", "add", "--local", "--trip", id,
		"--on", start.AddDate(0, 0, 1).Format("2006-01-02"), "--hour", "9", "Museu")
	require.NoError(t, err)

	_, err = execute(t, "links", "add", "--local", "--trip", id, "Reserva", "https://example.com/r")
	require.NoError(t, err)

	out, err = execute(t, "show", "--local", "--trip", id, "-o", "json")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, out, "Lisboa")
	assert.Contains(t, out, "Museu")
	assert.Contains(t, out, "https://example.com/r")
	assert.Contains(t, out, "bia@example.com")
}

func TestActivityOutsideTripIsRefused(t *testing.T) {
	localEnv(t)
	start := time.Now().AddDate(1, 0, 0)

	out, err := execute(t, "trips", "create", "--local",
		"--destination", "Recife", "--from", start.Format("2006-01-02"),
		"--to", start.Format("2006-01-02"),
		"--owner-name", "Ana", "--owner-email", "ana@example.com")
	require.NoError(t, err)
	id := strings.TrimSpace(out[strings.Index(out, ": ")+2:])

	_, err = execute(t, "activities", "add", "--local", "--trip", id,
		"--on", start.AddDate(0, 0, 5).Format("2006-01-02"), "--hour", "9", "Praia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the trip")
}

func TestCreateRequiresFlags(t *testing.T) {
	localEnv(t)
	_, err := execute(t, "trips", "create", "--local", "--destination", "Lisboa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestShowWithoutTrip(t *testing.T) {
	localEnv(t)
	_, err := execute(t, "show", "--local", "-o", "yaml")
	assert.ErrorIs(t, err, trip.ErrMissingIdentifier)
}
