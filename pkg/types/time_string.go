package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// layout parses wall-clock times in HH:MM format.
const layout = "15:04"

var (
	// ErrInvalidTimeString is returned for malformed time values.
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is stored as a plain string so it round-trips through JSON and
// Postgres TIME columns without timezone surprises.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(layout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(layout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result must stay within the same day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes leaves the day", ErrInvalidTimeString, string(t), minutes)
	}
	// 24:00 is represented as the exclusive end of day
	if total == 24*60 {
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Lexicographic comparison is correct for zero-padded HH:MM values.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// MinutesBetween returns end - t in minutes.
func MinutesBetween(t, end TimeString) (int, error) {
	from, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	var to int
	if end == "24:00" {
		to = 24 * 60
	} else {
		to, err = end.Minutes()
		if err != nil {
			return 0, err
		}
	}
	return to - from, nil
}

// Value implements driver.Valuer so TimeString maps to a TIME column.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres returns TIME columns as
// "HH:MM:SS"; the seconds part is dropped.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		if len(v) >= 5 {
			v = v[:5]
		}
		*t = TimeString(v)
		return nil
	case []byte:
		s := string(v)
		if len(s) >= 5 {
			s = s[:5]
		}
		*t = TimeString(s)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}
