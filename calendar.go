package civiltime

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// The Gregorian leap schedule repeats every 400 years: 97 leap days
	// in 146097 days.
	daysPerEra = 146097

	// Days from 0000-03-01 to 1970-01-01.
	epochShift = 719468
)

// daysOfCivil converts a calendar date to a count of days since 1970-01-01.
// The year is shifted to start on March 1st, which makes the leap day the
// last day of the shifted year, then decomposed into 400-year eras. Exact
// for any date; ok is false when the day count does not fit in an int64.
func daysOfCivil(year int64, month Month, day int) (days int64, ok bool) {
	y := year
	if month <= February {
		y--
	}
	era := divFloor(y, 400)
	yoe := y - era*400 // [0, 399]
	var mp int64
	if month >= March {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1   // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]

	days, ok = mulChecked(era, daysPerEra)
	if !ok {
		return 0, false
	}
	days, ok = addChecked(days, doe-epochShift)
	return days, ok
}

// civilOfDays is the inverse of daysOfCivil. Exact for every day count up
// to math.MaxInt64-epochShift; callers guard the top edge.
func civilOfDays(days int64) (year int64, month Month, day int) {
	z := days + epochShift
	era := divFloor(z, int64(daysPerEra))
	doe := z - era*daysPerEra                              // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day = int(doy - (153*mp+2)/5 + 1)        // [1, 31]
	if mp < 10 {
		month = Month(mp + 3)
	} else {
		month = Month(mp - 9)
	}
	if month <= February {
		y++
	}
	return y, month, day
}

// weekdayOfDays returns the ISO weekday of a day count. Day 0, 1970-01-01,
// was a Thursday.
func weekdayOfDays(days int64) Weekday {
	return Weekday(positiveRem(days+3, 7) + 1)
}
