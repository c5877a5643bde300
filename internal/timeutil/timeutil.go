package timeutil

import (
	"fmt"
	"time"
)

// feedTimeLayout matches the leading portion of upstream event timestamps
// (YYYY-MM-DDTHH:MM...). Anything past the minute is ignored.
const feedTimeLayout = "2006-01-02T15:04"

// KickoffLabel converts an upstream UTC timestamp into a local display label
// like "1/14 7:30PM". The offset is a static operator-configured hour shift;
// there is no DST logic. Malformed input yields "TBD" rather than an error so
// a bad timestamp can never take an event down with it.
func KickoffLabel(raw string, offsetHours int) string {
	if len(raw) < len(feedTimeLayout) {
		return "TBD"
	}
	t, err := time.Parse(feedTimeLayout, raw[:len(feedTimeLayout)])
	if err != nil {
		return "TBD"
	}
	t = t.Add(time.Duration(offsetHours) * time.Hour)

	hour := t.Hour()
	amPM := "AM"
	if hour >= 12 {
		amPM = "PM"
	}
	hour12 := hour
	if hour12 > 12 {
		hour12 -= 12
	}
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d/%d %d:%02d%s", int(t.Month()), t.Day(), hour12, t.Minute(), amPM)
}
