package civiltime

import "time"

// The single seam between this package's whole-second model and the
// standard library's sub-second time.Time.

// InstantOfTime converts a standard library time to an Instant, dropping
// any sub-second component.
func InstantOfTime(t time.Time) Instant {
	return Instant(t.Unix())
}

// Time returns the instant as a standard library time in UTC, at
// whole-second resolution.
func (t Instant) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}
