package testutil

import (
	"time"

	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// Wednesday is the reference day used across tests: Wed 2025-06-11, local time.
var Wednesday = time.Date(2025, time.June, 11, 12, 0, 30, 0, time.Local)

// At returns a local time on Wednesday's date.
func At(hour, minute, second int) time.Time {
	return time.Date(2025, time.June, 11, hour, minute, second, 0, time.Local)
}

// Clock is a settable time source.
type Clock struct {
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time { return c.now }

func (c *Clock) Set(t time.Time) { c.now = t }

func (c *Clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// InputOption customizes a SessionInput built by NewTestInput.
type InputOption func(*domain.SessionInput)

func WithStart(v string) InputOption {
	return func(in *domain.SessionInput) { in.Start = v }
}

func WithBreak(v string) InputOption {
	return func(in *domain.SessionInput) { in.Break = v }
}

func WithTarget(v string) InputOption {
	return func(in *domain.SessionInput) { in.Target = v }
}

// NewTestInput defaults to an 08:00 start with the standard break and target.
func NewTestInput(opts ...InputOption) domain.SessionInput {
	in := domain.SessionInput{
		Start:  "08:00",
		Break:  domain.DefaultBreakDuration,
		Target: domain.DefaultTargetDuration,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
