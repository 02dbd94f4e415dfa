package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidPeriodicity is returned when a periodicity is neither daily nor weekly
var ErrInvalidPeriodicity = errors.New("invalid periodicity")

// Periodicity is the cadence a habit is expected to be completed at
type Periodicity string

const (
	Daily  Periodicity = "daily"
	Weekly Periodicity = "weekly"
)

// Periodicities lists every supported periodicity in display order
var Periodicities = []Periodicity{Daily, Weekly}

// ParsePeriodicity converts user or storage input into a Periodicity.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParsePeriodicity(s string) (Periodicity, error) {
	switch p := Periodicity(strings.ToLower(strings.TrimSpace(s))); p {
	case Daily, Weekly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (must be 'daily' or 'weekly')", ErrInvalidPeriodicity, s)
	}
}

// Valid reports whether p is one of the supported periodicities
func (p Periodicity) Valid() bool {
	return p == Daily || p == Weekly
}

// Step returns the maximum allowed gap between two consecutive completions
func (p Periodicity) Step() time.Duration {
	if p == Daily {
		return 24 * time.Hour
	}
	return 7 * 24 * time.Hour
}

func (p Periodicity) String() string {
	return string(p)
}
