// Package workout holds the workout log and the statistics derived from it.
package workout

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidEntry is wrapped by every validation failure of a workout entry
var ErrInvalidEntry = errors.New("invalid workout entry")

// Entry is a single completed workout. Entries are never modified once recorded.
type Entry struct {
	ID              string    `json:"id,omitempty" yaml:"id,omitempty"`
	Date            time.Time `json:"date" yaml:"date"`
	Type            string    `json:"type" yaml:"type"`
	DurationMinutes int       `json:"durationMinutes" yaml:"durationMinutes"`
	Notes           string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ValidationError describes why an entry was rejected
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidEntry
}

// Validate checks the fields a workout needs before it can be recorded
func Validate(e Entry) error {
	if strings.TrimSpace(e.Type) == "" {
		return ValidationError{Field: "type", Message: "is required"}
	}
	if e.DurationMinutes <= 0 {
		return ValidationError{
			Field:   "durationMinutes",
			Message: fmt.Sprintf("must be positive, got %d", e.DurationMinutes),
		}
	}
	return nil
}

// Common workout types offered by the CLI. Any non-empty label is accepted.
const (
	TypeStrength = "Strength"
	TypeCardio   = "Cardio"
	TypeHIIT     = "HIIT"
	TypeYoga     = "Yoga"
	TypeRunning  = "Running"
)

// KnownTypes returns the suggested workout types
func KnownTypes() []string {
	return []string{
		TypeStrength,
		TypeCardio,
		TypeHIIT,
		TypeYoga,
		TypeRunning,
	}
}
