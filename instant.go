package civiltime

// Instant is a point in time, counted in seconds since
// 1970-01-01 00:00:00 UTC. Negative values are before the epoch.
//
// Construct one directly from a raw second count (Instant(sec)), from a
// date-time via InstantAt, or from a standard library time via
// InstantOfTime.
type Instant int64

// Unix returns the raw count of seconds since 1970-01-01 00:00:00 UTC.
func (t Instant) Unix() int64 {
	return int64(t)
}

// Add returns the instant delta seconds later (earlier for negative
// delta). Fails with ErrOverflow instead of wrapping around.
func (t Instant) Add(delta int64) (Instant, error) {
	sum, ok := addChecked(int64(t), delta)
	if !ok {
		return 0, rangeErrf(ErrOverflow, "%d %+ds", int64(t), delta)
	}
	return Instant(sum), nil
}

// Sub returns the difference t − u in seconds. Fails with ErrOverflow
// instead of wrapping around.
func (t Instant) Sub(u Instant) (int64, error) {
	diff, ok := subChecked(int64(t), int64(u))
	if !ok {
		return 0, rangeErrf(ErrOverflow, "%d - %d", int64(t), int64(u))
	}
	return diff, nil
}

func (t Instant) Before(u Instant) bool {
	return t < u
}

func (t Instant) After(u Instant) bool {
	return t > u
}

// Compare returns -1 if t is before u, +1 if t is after u, and 0 if they
// are the same instant.
func (t Instant) Compare(u Instant) int {
	return cmpOrd(t, u)
}
