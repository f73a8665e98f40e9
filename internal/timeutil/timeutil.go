package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse errors are distinguished at the process boundary, where each
// maps to its own exit code.
var (
	ErrBadDate     = errors.New("could not parse date, expected dd:mm:yyyy")
	ErrBadTime     = errors.New("could not parse time, expected hh:mm")
	ErrMissingTime = errors.New("retroactive date requires an explicit time, set one with --time")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate normalizes a dd:mm:yyyy input into yyyy-mm-dd.
func ParseDate(s string) (string, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return "", ErrBadDate
	}
	t, err := time.Parse("2:1:2006", s)
	if err != nil {
		return "", ErrBadDate
	}
	return t.Format(DateLayout), nil
}

// ParseTime normalizes an h:mm or hh:mm input into hh:mm.
func ParseTime(s string) (string, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "", ErrBadTime
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", ErrBadTime
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return "", ErrBadTime
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", ErrBadTime
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// MinutesBetween returns the minute difference between two same-day
// hh:mm clock strings. Negative results indicate out-of-order input;
// callers treat them as a defect, never as a duration.
func MinutesBetween(from, to string) (int, error) {
	start, err := clockMinutes(from)
	if err != nil {
		return 0, err
	}
	stop, err := clockMinutes(to)
	if err != nil {
		return 0, err
	}
	return stop - start, nil
}

func clockMinutes(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parsing clock value %q: %w", s, ErrBadTime)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// HoursAndMinutes splits a minute count into whole hours and leftover
// minutes.
func HoursAndMinutes(minutes int) (int, int) {
	return minutes / 60, minutes % 60
}

// Clock supplies wall-clock date and time strings. Injected so reports
// stay deterministic under test.
type Clock interface {
	Today() string
	Now() string
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Today() string { return time.Now().Format(DateLayout) }
func (SystemClock) Now() string   { return time.Now().Format(TimeLayout) }
