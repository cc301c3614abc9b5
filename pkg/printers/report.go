// Package printers writes trips to the terminal as tables, JSON or YAML.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/trip/pkg/trip"
)

// Format names an output format of the show command.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Formats lists the accepted values of --output.
func Formats() []string {
	return []string{string(FormatPretty), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatPretty:
		return FormatPretty, nil
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q, one of %s", s, strings.Join(Formats(), ", "))
}

// Report is everything the show command knows about one trip.
type Report struct {
	Trip         trip.Trip          `json:"trip"`
	When         string             `json:"when"`
	Activities   []trip.Activity    `json:"activities"`
	Links        []trip.Link        `json:"links"`
	Participants []trip.Participant `json:"participants"`
}

// Write renders r to w in format f. pp styles the pretty format.
func Write(w io.Writer, f Format, r Report, pp PrettyPrint) error {
	if r.When == "" {
		r.When = trip.Derive(r.Trip).When
	}
	switch f {
	case FormatPretty:
		pp.Out = w
		pp.Trip(r)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		return writeYAML(w, r)
	}
	return fmt.Errorf("unknown output format %q", f)
}

// writeYAML goes through JSON first so YAML keys follow the json tags of the
// domain types.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
