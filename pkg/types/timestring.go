package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is the unit of all slot arithmetic: comparisons are strict and
// AddMinutes never rolls over midnight (crossing midnight is an error,
// which is how slots spilling past closing time get rejected).
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only HH:MM.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
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
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("invalid time %q: expected HH:MM", string(t))
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

// minutes returns minutes elapsed since midnight.
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Zero-padded "HH:MM" compares correctly as a string.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time m minutes later, rolling over hour
// boundaries (21:45 + 30 = 22:15). Crossing midnight is an error.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 {
		return "", fmt.Errorf("time %s minus %d minutes is before midnight", t, -m)
	}
	if total > 24*60 {
		return "", fmt.Errorf("time %s plus %d minutes crosses midnight", t, m)
	}
	if total == 24*60 {
		// 24:00 has no HH:MM representation; treat as crossing midnight.
		return "", fmt.Errorf("time %s plus %d minutes crosses midnight", t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesUntil returns the number of minutes from t to other.
// Negative when other is earlier than t.
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	a, err := t.minutes()
	if err != nil {
		return 0, err
	}
	b, err := other.minutes()
	if err != nil {
		return 0, err
	}
	return b - a, nil
}

// Value implements driver.Valuer so TimeString maps to a TIME column.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as
// "HH:MM:SS" strings or as time.Time depending on the driver.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
