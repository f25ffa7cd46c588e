package app

import (
	"time"

	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// Default notes shown beneath each output.
const (
	NoteCurrent = "Bisherige Arbeitszeit (abzueglich Pause)"
	NoteTarget  = "Gehe zu dieser Uhrzeit, um deine Sollzeit zu erfuellen"
	NoteMax     = "Absolute Grenze einschliesslich Pause"
)

// OutputPlaceholder replaces every time output while input is incomplete.
const OutputPlaceholder = "-"

type StatusRequest struct {
	Now *time.Time
}

func NewStatusRequest() StatusRequest {
	return StatusRequest{}
}

// Timeline holds the marker labels and positions of the start→max bar.
// Percentages are relative to the start→max span.
type Timeline struct {
	Valid       bool
	StartLabel  string
	NowLabel    string
	TargetLabel string
	MaxLabel    string
	FillPct     float64
	StartPct    float64
	NowPct      float64
	TargetPct   float64
	MaxPct      float64
}

// SessionView is the rendered form of a SessionState.
type SessionView struct {
	Valid       bool
	Input       domain.SessionInput
	Worked      string
	TargetEnd   string
	MaxEnd      string
	CurrentNote string
	TargetNote  string
	Warning     domain.Warning
	Timeline    Timeline
}

type StatusResponse struct {
	GeneratedAt time.Time
	State       domain.SessionState
	Session     SessionView
	Week        WeekView
}
