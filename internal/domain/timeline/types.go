package timeline

import "errors"

var (
	ErrInvalidTimePoint     = errors.New("time point must be HH:MM with hour 0-23 and minute 0-59")
	ErrOutOfOperatingWindow = errors.New("time is outside the operating window")
	ErrOutOfRange           = errors.New("offset or slot is outside the timeline grid")
	ErrInvalidInterval      = errors.New("interval end precedes its start")
)

const (
	// WindowStartHour is the wall-clock hour at which the business day opens.
	WindowStartHour = 10
	// WindowEndHour is the next-day hour at which the business day closes.
	WindowEndHour = 5
	// WindowMinutes is the length of the operating window (10:00 -> 05:00).
	WindowMinutes = 1140

	DefaultGranularity = 5

	minutesPerDay = 24 * 60
	// first offset of the after-midnight branch (00:00)
	nextDayBase = (24 - WindowStartHour) * 60
	// offsets stay below this for any TimePoint whose hour is 0-5 or 10-23
	offsetLimit = nextDayBase + (WindowEndHour+1)*60
)
