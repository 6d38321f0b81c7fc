package kernel

import "time"

// TimePrecision is the resolution timestamps are kept at, the resolution of
// a Postgres timestamptz.
const TimePrecision = time.Microsecond

// Clock returns the current time. The zero Clock reads the system clock.
type Clock func() time.Time

// Now returns the current time in UTC truncated to TimePrecision, so a
// timestamp reads back from any store exactly as it was returned.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now().UTC().Truncate(TimePrecision)
	}
	return c().UTC().Truncate(TimePrecision)
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
