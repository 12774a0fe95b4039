package civiltime

import "fmt"

// Month of the year, January = 1 through December = 12.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// MonthOf returns the month with the given conventional number (January
// is 1), or false if n is outside 1..12.
func MonthOf(n int) (Month, bool) {
	if n < int(January) || n > int(December) {
		return 0, false
	}
	return Month(n), true
}

// Number returns the conventional month number, January = 1.
func (m Month) Number() int {
	return int(m)
}

// Length returns the number of days in the month. February has 29 days in
// leap years.
func (m Month) Length(leap bool) int {
	if m == February && leap {
		return 29
	}
	return monthLengths[m-1]
}

// DaysBefore returns the number of days between January 1st and the first
// day of the month, in a year of the given kind.
func (m Month) DaysBefore(leap bool) int {
	n := monthStarts[m-1]
	if leap && m > February {
		n++
	}
	return n
}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Day of the year each month starts on in common years, zero-based.
var monthStarts = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// IsLeapYear applies the proleptic Gregorian rule to any year, positive or
// negative: a year is a leap year iff it is divisible by 4, and not
// divisible by 100 unless also divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year.
func DaysInMonth(year int, m Month) int {
	return m.Length(IsLeapYear(year))
}

// Weekday is a day of the week with ISO 8601 numbering, Monday = 1 through
// Sunday = 7.
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf returns the weekday with the given ISO number, or false if n
// is outside 1..7.
func WeekdayOf(n int) (Weekday, bool) {
	if n < int(Monday) || n > int(Sunday) {
		return 0, false
	}
	return Weekday(n), true
}

// Number returns the ISO 8601 weekday number, Monday = 1.
func (d Weekday) Number() int {
	return int(d)
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d-1]
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
