// Package dateutil carries date values through the app without collapsing
// "field left blank" and "field holds garbage" into the same zero value. The
// distinction feeds the data-quality rules.
package dateutil

import (
	"strings"
	"time"
)

const Layout = "2006-01-02"

type State int

const (
	Absent State = iota
	Invalid
	Valid
)

// DateField is the tri-state result of parsing a date column or form field.
type DateField struct {
	State State
	Raw   string    // original text, kept when Invalid
	Time  time.Time // set when Valid
}

func ParseField(s string) DateField {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DateField{State: Absent}
	}
	t, err := time.Parse(Layout, trimmed)
	if err != nil {
		return DateField{State: Invalid, Raw: s}
	}
	return DateField{State: Valid, Time: t}
}

// FromTimePtr lifts a nullable DB column into a DateField.
func FromTimePtr(t *time.Time) DateField {
	if t == nil {
		return DateField{State: Absent}
	}
	return DateField{State: Valid, Time: *t}
}

func (d DateField) IsValid() bool { return d.State == Valid }

// TimePtr flattens back to the nullable representation the store expects.
// Invalid collapses to nil here; the lenient edge the original form had.
func (d DateField) TimePtr() *time.Time {
	if d.State != Valid {
		return nil
	}
	t := d.Time
	return &t
}

func (d DateField) Format() string {
	if d.State != Valid {
		return ""
	}
	return d.Time.Format(Layout)
}

// FirstOfMonth truncates to the reference-month convention used by the
// payroll table.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonth reads "2006-01" (or a full date) and normalizes to first-of-month.
func ParseMonth(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01", trimmed); err == nil {
		return FirstOfMonth(t), true
	}
	if t, err := time.Parse(Layout, trimmed); err == nil {
		return FirstOfMonth(t), true
	}
	return time.Time{}, false
}
