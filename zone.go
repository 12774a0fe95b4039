package civiltime

import "fmt"

// Offset is a fixed time zone offset in seconds ahead of UTC: positive
// east of Greenwich, negative west. It never varies with the date; there
// is no daylight-saving modeling.
type Offset int32

// UTC is the zero offset.
const UTC Offset = 0

// NewOffset builds an offset from a count of seconds ahead of UTC.
// Magnitudes of a full day or more fail with ErrComponentOutOfRange.
func NewOffset(seconds int) (Offset, error) {
	if seconds <= -secondsPerDay || seconds >= secondsPerDay {
		return 0, rangeErrf(ErrComponentOutOfRange, "offset %ds", seconds)
	}
	return Offset(seconds), nil
}

// OffsetHM builds an offset from whole hours and minutes ahead of UTC.
// Japan Standard Time is OffsetHM(9, 0); for zones west of Greenwich both
// components are negative, so UTC−09:30 is OffsetHM(-9, -30).
func OffsetHM(hours, minutes int) (Offset, error) {
	return NewOffset((hours*60 + minutes) * 60)
}

// Seconds returns the offset as a count of seconds ahead of UTC.
func (o Offset) Seconds() int {
	return int(o)
}

func (o Offset) String() string {
	if o == 0 {
		return "UTC"
	}
	s := int(o)
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	if s%60 == 0 {
		return fmt.Sprintf("UTC%s%02d:%02d", sign, s/3600, s/60%60)
	}
	return fmt.Sprintf("UTC%s%02d:%02d:%02d", sign, s/3600, s/60%60, s%60)
}

// ZonedDateTime is a date-time together with the fixed UTC offset it is
// expressed in, which makes its mapping to an Instant unambiguous.
type ZonedDateTime struct {
	DateTime NaiveDateTime
	Offset   Offset
}

// NewZonedDateTime builds a zoned date-time from components, validating
// them the way NewDateTime does.
func NewZonedDateTime(o Offset, year int, month Month, day, hour, minute, second int) (ZonedDateTime, error) {
	d, err := NewDateTime(year, month, day, hour, minute, second)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{d, o}, nil
}

// In converts the instant to a date-time in the given fixed offset.
//
// An instant with a positive offset happened that many seconds before the
// zone's midnight of 1970-01-01, so the offset is added to the raw second
// count before splitting it into a day count and a second of the day. The
// split uses floored division, which keeps the second of the day within
// [0, 86399] for instants before the epoch.
func (t Instant) In(o Offset) (ZonedDateTime, error) {
	local, ok := addChecked(int64(t), int64(o))
	if !ok {
		return ZonedDateTime{}, rangeErrf(ErrOverflow, "instant %d in %v", int64(t), o)
	}
	days := divFloor(local, secondsPerDay)
	secs := int(positiveRem(local, secondsPerDay))
	return ZonedDateTime{dateTimeOfDayCount(days, secs), o}, nil
}

// UTC converts the instant to a date-time at offset zero. Unlike In, it
// cannot fail: there is no offset arithmetic to overflow.
func (t Instant) UTC() ZonedDateTime {
	z, _ := t.In(UTC)
	return z
}

// InstantAt interprets the date-time as local time at the given offset and
// returns the instant it denotes, subtracting the offset to recover UTC
// seconds. Fails with ErrOverflow when the date is too distant for its
// second count to be representable.
func (d NaiveDateTime) InstantAt(o Offset) (Instant, error) {
	days := d.DayCount()
	var secs int64
	var ok bool
	if days >= 0 {
		secs, ok = mulChecked(days, secondsPerDay)
		if ok {
			secs, ok = addChecked(secs, int64(d.SecondOfDay()))
		}
	} else {
		// days*86400 alone can underflow for dates in the first
		// representable day even when the final second count fits,
		// so fold one day into the addend.
		secs, ok = mulChecked(days+1, secondsPerDay)
		if ok {
			secs, ok = addChecked(secs, int64(d.SecondOfDay())-secondsPerDay)
		}
	}
	if ok {
		secs, ok = subChecked(secs, int64(o))
	}
	if !ok {
		return 0, rangeErrf(ErrOverflow, "%v at %v", d, o)
	}
	return Instant(secs), nil
}

// Instant returns the instant the zoned date-time denotes.
func (z ZonedDateTime) Instant() (Instant, error) {
	return z.DateTime.InstantAt(z.Offset)
}

// Weekday returns the day of the week of the local date.
func (z ZonedDateTime) Weekday() Weekday {
	return z.DateTime.Weekday()
}

func (z ZonedDateTime) String() string {
	return fmt.Sprintf("%v %v", z.DateTime, z.Offset)
}
