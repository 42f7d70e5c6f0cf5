package utils

import "time"

// ParseWhen combines a YYYY-MM-DD date and an HH:MM time-of-day into a
// local time.Time. Seconds in the time component are accepted and ignored.
func ParseWhen(dateYMD, timeHHMM string) (time.Time, error) {
	if len(timeHHMM) > 5 {
		timeHHMM = timeHHMM[:5]
	}
	return time.ParseInLocation("2006-01-02 15:04", dateYMD+" "+timeHHMM, time.Local)
}

// IsFuture reports whether the given date and time-of-day are strictly in
// the future. Unparseable inputs are never in the future.
func IsFuture(dateYMD, timeHHMM string) bool {
	when, err := ParseWhen(dateYMD, timeHHMM)
	if err != nil {
		return false
	}
	return when.After(time.Now())
}

// TimeAtOrAfter reports whether the HH:MM time t starts at or after the
// HH:MM time floor. Comparison is on minutes since midnight.
func TimeAtOrAfter(t, floor string) bool {
	tm, ok1 := minutes(t)
	fm, ok2 := minutes(floor)
	if !ok1 || !ok2 {
		return false
	}
	return tm >= fm
}

func minutes(hhmm string) (int, bool) {
	if len(hhmm) > 5 {
		hhmm = hhmm[:5]
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
