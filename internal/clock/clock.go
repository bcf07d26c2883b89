package clock

import "time"

// Clock abstracts "now" so deadline and window logic is testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// New returns a Clock backed by the system time in UTC.
func New() Clock { return realClock{} }

// Fixed is a Clock pinned to a settable instant, for tests.
type Fixed struct {
	Time time.Time
}

func (f *Fixed) Now() time.Time { return f.Time }

func (f *Fixed) Advance(d time.Duration) { f.Time = f.Time.Add(d) }
