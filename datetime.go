package civiltime

import "fmt"

// NaiveDateTime is a date and time of day with no associated time zone.
//
// Year numbering follows ISO 8601: 1 BC is year 0, 2 BC is year −1, and so
// on. The proleptic Gregorian calendar applies to every year.
//
// The zero value is the impossible date 0000-00-00 00:00:00; build values
// with NewDateTime or derive them from an Instant.
type NaiveDateTime struct {
	Year   int
	Month  Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// NewDateTime builds a date-time from components, validating every one of
// them. It fails with ErrInvalidDate when the month is outside 1..12 or the
// day is impossible in that month of that year, with ErrComponentOutOfRange
// when the time of day is out of range, and with ErrOverflow for years so
// distant that the date has no representable day count. Invalid inputs are
// reported, never clamped.
func NewDateTime(year int, month Month, day, hour, minute, second int) (NaiveDateTime, error) {
	if month < January || month > December {
		return NaiveDateTime{}, rangeErrf(ErrInvalidDate, "month %d", int(month))
	}
	if last := DaysInMonth(year, month); day < 1 || day > last {
		return NaiveDateTime{}, rangeErrf(ErrInvalidDate, "day %d of %s %d", day, month, year)
	}
	if hour < 0 || hour > 23 {
		return NaiveDateTime{}, rangeErrf(ErrComponentOutOfRange, "hour %d", hour)
	}
	if minute < 0 || minute > 59 {
		return NaiveDateTime{}, rangeErrf(ErrComponentOutOfRange, "minute %d", minute)
	}
	if second < 0 || second > 59 {
		return NaiveDateTime{}, rangeErrf(ErrComponentOutOfRange, "second %d", second)
	}
	if _, ok := daysOfCivil(int64(year), month, day); !ok {
		return NaiveDateTime{}, rangeErrf(ErrOverflow, "year %d", year)
	}
	return NaiveDateTime{year, month, day, hour, minute, second}, nil
}

// DateTimeOfDayCount recomposes a date-time from the canonical pair of a
// day count and a second of the day. Fails with ErrComponentOutOfRange
// when secondOfDay is outside [0, 86399], and with ErrOverflow when the
// day count has no representable date.
func DateTimeOfDayCount(days int64, secondOfDay int) (NaiveDateTime, error) {
	if secondOfDay < 0 || secondOfDay >= secondsPerDay {
		return NaiveDateTime{}, rangeErrf(ErrComponentOutOfRange, "second of day %d", secondOfDay)
	}
	if days > maxDayCount {
		return NaiveDateTime{}, rangeErrf(ErrOverflow, "day count %d", days)
	}
	return dateTimeOfDayCount(days, secondOfDay), nil
}

const maxDayCount = (1<<63 - 1) - epochShift

func dateTimeOfDayCount(days int64, secondOfDay int) NaiveDateTime {
	year, month, day := civilOfDays(days)
	return NaiveDateTime{
		Year:   int(year),
		Month:  month,
		Day:    day,
		Hour:   secondOfDay / secondsPerHour,
		Minute: secondOfDay / secondsPerMinute % 60,
		Second: secondOfDay % 60,
	}
}

// DayCount returns the number of days between 1970-01-01 and the date.
// Negative for dates before the epoch.
func (d NaiveDateTime) DayCount() int64 {
	days, _ := daysOfCivil(int64(d.Year), d.Month, d.Day) // representable per NewDateTime
	return days
}

// SecondOfDay returns the number of seconds since the midnight that
// started the day, in [0, 86399].
func (d NaiveDateTime) SecondOfDay() int {
	return d.Hour*secondsPerHour + d.Minute*secondsPerMinute + d.Second
}

// Weekday returns the day of the week; 1970-01-01 was a Thursday.
func (d NaiveDateTime) Weekday() Weekday {
	return weekdayOfDays(d.DayCount())
}

// Compare orders two date-times chronologically, returning -1, 0 or +1.
// Component order coincides with (day count, second of day) order for any
// two valid values.
func (d NaiveDateTime) Compare(e NaiveDateTime) int {
	if c := cmpOrd(d.Year, e.Year); c != 0 {
		return c
	}
	if c := cmpOrd(d.Month, e.Month); c != 0 {
		return c
	}
	if c := cmpOrd(d.Day, e.Day); c != 0 {
		return c
	}
	if c := cmpOrd(d.Hour, e.Hour); c != 0 {
		return c
	}
	if c := cmpOrd(d.Minute, e.Minute); c != 0 {
		return c
	}
	return cmpOrd(d.Second, e.Second)
}

func (d NaiveDateTime) Before(e NaiveDateTime) bool {
	return d.Compare(e) < 0
}

func (d NaiveDateTime) After(e NaiveDateTime) bool {
	return d.Compare(e) > 0
}

func (d NaiveDateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.Year, int(d.Month), d.Day, d.Hour, d.Minute, d.Second)
}
