package command

import (
	"fmt"
	"time"
)

const (
	microsPerSecond int64 = 1_000_000
	microsPerMinute       = 60 * microsPerSecond
	microsPerHour         = 60 * microsPerMinute
	microsPerDay          = 24 * microsPerHour
)

// FormatDelta renders a duration in the H:MM:SS[.ffffff] style existing
// report consumers expect for the execution time field, e.g.
// "0:00:01.234567". Durations of a day or more gain a "N day(s), "
// prefix.
func FormatDelta(d time.Duration) string {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}

	days := us / microsPerDay
	us -= days * microsPerDay
	hours := us / microsPerHour
	us -= hours * microsPerHour
	mins := us / microsPerMinute
	us -= mins * microsPerMinute
	secs := us / microsPerSecond
	micros := us % microsPerSecond

	out := fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	if micros > 0 {
		out += fmt.Sprintf(".%06d", micros)
	}
	if days == 1 {
		out = "1 day, " + out
	} else if days > 1 {
		out = fmt.Sprintf("%d days, %s", days, out)
	}
	return out
}
