/*
Package civiltime converts between instants (integer seconds since the Unix
epoch) and civil calendar date-times under proleptic Gregorian rules.

We implement:

1. Instant, an int64 count of seconds since 1970-01-01 00:00:00 UTC, with
checked arithmetic and ordering.

2. Civil calendar math: exact closed-form conversion between a signed day
count and a (year, month, day) date, valid for all years including years ≤ 0.

3. NaiveDateTime, a validated date and time of day with no time zone attached.

4. ZonedDateTime, a NaiveDateTime paired with a fixed UTC offset, which gives
it an unambiguous mapping to and from an Instant.

5. Interop with the standard library's time.Time, and a msgpack wire encoding
for all of the value types.

# Technical Details

**Calendar.**
The Gregorian leap rule (divisible by 4, except centuries not divisible
by 400) is applied proleptically to every year, with no carve-out for dates
before the calendar's historical adoption. Out of scope: Julian dates, leap
seconds, daylight-saving rules, timezone databases (only fixed numeric
offsets are modeled), textual parsing, and sub-second resolution.

**Day counts.**
Conversions go through a canonical (day count, second of day) pair. Splitting
seconds uses floored division, so the second of day stays in [0, 86399] even
for instants before the epoch: instant −1 is 1969-12-31 23:59:59, not a
negative time of day.

**Errors.**
The failure surface is closed: ErrInvalidDate, ErrComponentOutOfRange and
ErrOverflow, matched with errors.Is. Validation happens at construction and
arithmetic boundaries only; a value that exists is valid, and invalid inputs
are reported, never clamped.

All types are immutable values; every conversion is a pure function, safe to
call concurrently without coordination.
*/
package civiltime
