package format

import (
	"fmt"
	"time"
)

const dateLayout = "Jan 2, 2006"

// Date renders a timestamp as a short human readable date.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// OptionalDate renders a nullable timestamp, falling back to
// NotSpecified when the value is absent.
func OptionalDate(t *time.Time) string {
	if t == nil {
		return NotSpecified
	}
	return Date(*t)
}

// Days pluralizes a day count, e.g. "1 day" or "14 days".
func Days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// DaysUntil reports the whole days from now until t, clamped at zero.
func DaysUntil(now, t time.Time) int {
	d := int(t.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
