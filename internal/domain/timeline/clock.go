package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// TimePoint is a wall-clock HH:MM value read against the business day.
type TimePoint struct {
	hour   int
	minute int
}

func NewTimePoint(hour, minute int) (TimePoint, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimePoint{}, ErrInvalidTimePoint
	}
	return TimePoint{hour: hour, minute: minute}, nil
}

// ParseTimePoint accepts "HH:MM" and "HH:MM:SS". Hours 24-29 are the
// shift-sheet notation for the following morning and are folded back to 0-5.
func ParseTimePoint(s string) (TimePoint, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimePoint{}, ErrInvalidTimePoint
	}
	if len(parts[1]) != 2 {
		return TimePoint{}, ErrInvalidTimePoint
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimePoint{}, ErrInvalidTimePoint
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimePoint{}, ErrInvalidTimePoint
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return TimePoint{}, ErrInvalidTimePoint
		}
	}
	if hour >= 24 && hour <= 24+WindowEndHour {
		hour -= 24
	}
	return NewTimePoint(hour, minute)
}

func MustParseTimePoint(s string) TimePoint {
	t, err := ParseTimePoint(s)
	if err != nil {
		panic(fmt.Sprintf("timeline: invalid time point %q", s))
	}
	return t
}

func (t TimePoint) Hour() int   { return t.hour }
func (t TimePoint) Minute() int { return t.minute }

func (t TimePoint) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// MinuteOfDay counts minutes since calendar midnight.
func (t TimePoint) MinuteOfDay() int {
	return t.hour*60 + t.minute
}

func (t TimePoint) InOperatingWindow() bool {
	return t.hour >= WindowStartHour || t.hour <= WindowEndHour
}

// Offset is the number of minutes elapsed since the window opened at 10:00.
type Offset int

func (o Offset) Minutes() int { return int(o) }

// ToOffset maps 10:00-23:59 onto 0-839 and 00:00-05:59 onto 840-1199.
func ToOffset(t TimePoint) (Offset, error) {
	if !t.InOperatingWindow() {
		return 0, ErrOutOfOperatingWindow
	}
	if t.hour >= WindowStartHour {
		return Offset((t.hour-WindowStartHour)*60 + t.minute), nil
	}
	return Offset(nextDayBase + t.hour*60 + t.minute), nil
}

// FromOffset is the inverse of ToOffset.
func FromOffset(o Offset) (TimePoint, error) {
	if o < 0 || int(o) >= offsetLimit {
		return TimePoint{}, ErrOutOfRange
	}
	minuteOfDay := (WindowStartHour*60 + int(o)) % minutesPerDay
	return TimePoint{hour: minuteOfDay / 60, minute: minuteOfDay % 60}, nil
}

// AddMinutes moves t forward on the wall clock, wrapping past midnight.
func AddMinutes(t TimePoint, minutes int) (TimePoint, error) {
	if minutes < 0 {
		return TimePoint{}, ErrInvalidInterval
	}
	m := (t.MinuteOfDay() + minutes) % minutesPerDay
	return TimePoint{hour: m / 60, minute: m % 60}, nil
}
