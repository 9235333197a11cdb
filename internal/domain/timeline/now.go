package timeline

import "time"

// the hour at which a new calendar date starts counting as its own business day
const dayRolloverHour = WindowEndHour + 1

// NowIndicator places the current-time marker. It reports false while the
// shop is closed (05:00-09:59).
func NowIndicator(now time.Time) (Offset, bool) {
	tp := TimePoint{hour: now.Hour(), minute: now.Minute()}
	off, err := ToOffset(tp)
	if err != nil || int(off) >= WindowMinutes {
		return 0, false
	}
	return off, true
}

// BusinessDate returns the calendar date of the business day that now falls
// in. Small hours belong to the previous date's business day.
func BusinessDate(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if now.Hour() < dayRolloverHour {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
