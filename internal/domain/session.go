package domain

import "time"

// MaxWorkMinutes is the hard daily cap counted from arrival, break included.
const MaxWorkMinutes = 10 * 60

// WarningThresholdMinutes is how close to the cap the warning state starts.
const WarningThresholdMinutes = 30

// SessionInput holds the raw, last-entered input strings.
type SessionInput struct {
	Start  string
	Break  string
	Target string
}

// SessionState is an immutable snapshot of the running session. All minute
// values are offsets from local midnight. When Valid is false only
// ComputedAt is meaningful.
type SessionState struct {
	Valid          bool
	StartMinutes   int
	BreakMinutes   int
	TargetMinutes  int
	CurrentMinutes float64
	WorkedMinutes  float64
	EndAtTarget    int
	EndAtMax       int
	ComputedAt     time.Time
}

// Warning is the evaluated cap state and the note shown beneath the max end.
type Warning struct {
	Level        WarningLevel
	RemainingMin int
	Message      string
}
