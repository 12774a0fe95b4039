package civiltime

import (
	"errors"
	"math"
	"testing"
)

func mustDateTime(t testing.TB, year int, month Month, day, hour, minute, second int) NaiveDateTime {
	t.Helper()
	d, err := NewDateTime(year, month, day, hour, minute, second)
	if err != nil {
		t.Fatalf("NewDateTime(%d, %v, %d, %d, %d, %d) failed: %v", year, month, day, hour, minute, second, err)
	}
	return d
}

func TestNewDateTimeValidation(t *testing.T) {
	tests := []struct {
		year                      int
		month                     Month
		day, hour, minute, second int
		wantErr                   error
	}{
		{2016, July, 16, 20, 58, 46, nil},
		{2024, February, 29, 0, 0, 0, nil},
		{0, February, 29, 23, 59, 59, nil}, // year 0 (1 BC) is leap
		{-1199, February, 15, 14, 13, 20, nil},

		{2023, February, 29, 0, 0, 0, ErrInvalidDate},
		{1900, February, 29, 0, 0, 0, ErrInvalidDate},
		{2016, Month(0), 1, 0, 0, 0, ErrInvalidDate},
		{2016, Month(13), 1, 0, 0, 0, ErrInvalidDate},
		{2016, April, 31, 0, 0, 0, ErrInvalidDate},
		{2016, April, 0, 0, 0, 0, ErrInvalidDate},
		{2016, April, -1, 0, 0, 0, ErrInvalidDate},

		{2016, April, 1, 24, 0, 0, ErrComponentOutOfRange},
		{2016, April, 1, -1, 0, 0, ErrComponentOutOfRange},
		{2016, April, 1, 0, 60, 0, ErrComponentOutOfRange},
		{2016, April, 1, 0, -1, 0, ErrComponentOutOfRange},
		{2016, April, 1, 0, 0, 60, ErrComponentOutOfRange}, // no leap seconds
		{2016, April, 1, 0, 0, -1, ErrComponentOutOfRange},

		{math.MaxInt, January, 1, 0, 0, 0, ErrOverflow},
		{math.MinInt, January, 1, 0, 0, 0, ErrOverflow},
	}
	for _, test := range tests {
		_, err := NewDateTime(test.year, test.month, test.day, test.hour, test.minute, test.second)
		if !errors.Is(err, test.wantErr) || (test.wantErr == nil && err != nil) {
			t.Errorf("NewDateTime(%d, %v, %d, %d, %d, %d) error = %v, wanted %v",
				test.year, test.month, test.day, test.hour, test.minute, test.second, err, test.wantErr)
		}
	}
}

func TestDateTimeString(t *testing.T) {
	d := mustDateTime(t, 2016, July, 16, 20, 58, 46)
	if got := d.String(); got != "2016-07-16 20:58:46" {
		t.Fatalf("String = %q, wanted %q", got, "2016-07-16 20:58:46")
	}
	d = mustDateTime(t, 1, January, 2, 3, 4, 5)
	if got := d.String(); got != "0001-01-02 03:04:05" {
		t.Fatalf("String = %q, wanted %q", got, "0001-01-02 03:04:05")
	}
}

func TestDayCountDecomposition(t *testing.T) {
	d := mustDateTime(t, 2016, July, 16, 20, 58, 46)
	if got := d.DayCount(); got != 16998 {
		t.Fatalf("DayCount = %d, wanted 16998", got)
	}
	if got := d.SecondOfDay(); got != 20*3600+58*60+46 {
		t.Fatalf("SecondOfDay = %d, wanted %d", got, 20*3600+58*60+46)
	}

	back, err := DateTimeOfDayCount(d.DayCount(), d.SecondOfDay())
	if err != nil || back != d {
		t.Fatalf("DateTimeOfDayCount round trip = %v, %v, wanted %v", back, err, d)
	}

	if _, err := DateTimeOfDayCount(0, -1); !errors.Is(err, ErrComponentOutOfRange) {
		t.Fatalf("DateTimeOfDayCount(0, -1) error = %v, wanted ErrComponentOutOfRange", err)
	}
	if _, err := DateTimeOfDayCount(0, secondsPerDay); !errors.Is(err, ErrComponentOutOfRange) {
		t.Fatalf("DateTimeOfDayCount(0, 86400) error = %v, wanted ErrComponentOutOfRange", err)
	}
	if _, err := DateTimeOfDayCount(math.MaxInt64, 0); !errors.Is(err, ErrOverflow) {
		t.Fatalf("DateTimeOfDayCount(MaxInt64, 0) error = %v, wanted ErrOverflow", err)
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		year    int
		month   Month
		day     int
		weekday Weekday
	}{
		{2016, July, 17, Sunday},
		{2000, January, 1, Saturday},
		{1970, January, 1, Thursday},
		{1837, May, 3, Wednesday},
		// Julian day number 0, 1 January 4713 BC proleptic Julian,
		// is 24 November 4714 BC proleptic Gregorian — a Monday.
		{-4713, November, 24, Monday},
	}
	for _, test := range tests {
		d := mustDateTime(t, test.year, test.month, test.day, 0, 0, 0)
		if got := d.Weekday(); got != test.weekday {
			t.Errorf("%v.Weekday() = %v, wanted %v", d, got, test.weekday)
		}
	}
}

func TestDateTimeOrdering(t *testing.T) {
	ascending := []NaiveDateTime{
		mustDateTime(t, -1199, February, 15, 14, 13, 20),
		mustDateTime(t, 0, February, 29, 23, 59, 59),
		mustDateTime(t, 1969, December, 31, 23, 59, 59),
		mustDateTime(t, 1970, January, 1, 0, 0, 0),
		mustDateTime(t, 1970, January, 1, 0, 0, 1),
		mustDateTime(t, 1970, January, 1, 0, 1, 0),
		mustDateTime(t, 1970, January, 1, 1, 0, 0),
		mustDateTime(t, 1970, January, 2, 0, 0, 0),
		mustDateTime(t, 1970, February, 1, 0, 0, 0),
		mustDateTime(t, 2016, July, 16, 20, 58, 46),
	}
	for i, a := range ascending {
		for j, b := range ascending {
			want := cmpOrd(i, j)
			if got := a.Compare(b); got != want {
				t.Errorf("(%v).Compare(%v) = %d, wanted %d", a, b, got, want)
			}
			if got := a.Before(b); got != (i < j) {
				t.Errorf("(%v).Before(%v) = %v, wanted %v", a, b, got, i < j)
			}
			if got := a.After(b); got != (i > j) {
				t.Errorf("(%v).After(%v) = %v, wanted %v", a, b, got, i > j)
			}
		}
	}
}
