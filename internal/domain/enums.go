package domain

// WarningLevel classifies how close the current session is to the 10-hour cap.
type WarningLevel string

const (
	WarningNeutral WarningLevel = "neutral"
	WarningSoon    WarningLevel = "warning"
	WarningDanger  WarningLevel = "danger"
)

// Persisted key names. The prefix keeps them apart from anything else that
// shares the key-value table.
const (
	KeyStartTime      = "zeitrechner:startTime"
	KeyBreakDuration  = "zeitrechner:breakDuration"
	KeyTargetDuration = "zeitrechner:targetDuration"
	KeyWeeklyEntries  = "zeitrechner:weeklyEntries"
)

// Defaults applied when no input has been stored yet.
const (
	DefaultBreakDuration  = "00:30"
	DefaultTargetDuration = "08:00"
)

// BreakOptions and TargetOptions are the selectable durations offered by the
// input form.
var (
	BreakOptions  = []string{"00:00", "00:15", "00:30", "00:45", "01:00"}
	TargetOptions = []string{"04:00", "06:00", "07:00", "07:42", "08:00", "09:00", "10:00"}
)
