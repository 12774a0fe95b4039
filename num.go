package civiltime

import "math"

type signed interface {
	~int | ~int32 | ~int64
}

// divFloor rounds the quotient towards negative infinity. Go's native
// division truncates towards zero, which is wrong for splitting negative
// second counts into days.
func divFloor[T signed](dividend, divisor T) T {
	q := dividend / divisor
	if dividend%divisor != 0 && (dividend < 0) != (divisor < 0) {
		q--
	}
	return q
}

// positiveRem is the remainder within [0, divisor), even for negative
// dividends.
func positiveRem[T signed](dividend, divisor T) T {
	rem := dividend % divisor
	if rem < 0 {
		rem += divisor
	}
	return rem
}

func cmpOrd[T signed](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func addChecked(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func subChecked(a, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
