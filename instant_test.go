package civiltime

import (
	"errors"
	"math"
	"testing"
)

func TestInstantArithmetic(t *testing.T) {
	u, err := Instant(100).Add(23)
	if err != nil || u != 123 {
		t.Fatalf("Instant(100).Add(23) = %v, %v, wanted 123", u, err)
	}
	u, err = Instant(100).Add(-200)
	if err != nil || u != -100 {
		t.Fatalf("Instant(100).Add(-200) = %v, %v, wanted -100", u, err)
	}
	diff, err := Instant(100).Sub(Instant(-23))
	if err != nil || diff != 123 {
		t.Fatalf("Instant(100).Sub(-23) = %v, %v, wanted 123", diff, err)
	}
	if got := Instant(42).Unix(); got != 42 {
		t.Fatalf("Unix = %d, wanted 42", got)
	}
}

func TestInstantOverflow(t *testing.T) {
	if _, err := Instant(math.MaxInt64).Add(1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("MaxInt64 + 1 error = %v, wanted ErrOverflow", err)
	}
	if _, err := Instant(math.MinInt64).Add(-1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("MinInt64 - 1 error = %v, wanted ErrOverflow", err)
	}
	if u, err := Instant(math.MaxInt64).Add(-1); err != nil || u != math.MaxInt64-1 {
		t.Fatalf("MaxInt64 - 1 = %v, %v, wanted %v", u, err, int64(math.MaxInt64-1))
	}
	if _, err := Instant(math.MaxInt64).Sub(Instant(-1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("MaxInt64 - (-1) error = %v, wanted ErrOverflow", err)
	}
	if _, err := Instant(-2).Sub(Instant(math.MaxInt64)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("-2 - MaxInt64 error = %v, wanted ErrOverflow", err)
	}
	if diff, err := Instant(-1).Sub(Instant(math.MaxInt64)); err != nil || diff != math.MinInt64 {
		t.Fatalf("-1 - MaxInt64 = %v, %v, wanted MinInt64", diff, err)
	}
}

func TestInstantOrdering(t *testing.T) {
	if !Instant(-1).Before(Instant(0)) {
		t.Fatalf("Instant(-1).Before(0) = false")
	}
	if !Instant(1).After(Instant(0)) {
		t.Fatalf("Instant(1).After(0) = false")
	}
	if got := Instant(5).Compare(Instant(5)); got != 0 {
		t.Fatalf("Compare(equal) = %d, wanted 0", got)
	}
	if got := Instant(math.MinInt64).Compare(Instant(math.MaxInt64)); got != -1 {
		t.Fatalf("Compare(min, max) = %d, wanted -1", got)
	}
}
