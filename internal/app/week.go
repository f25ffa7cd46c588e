package app

// WeekDay is one listed day of the weekly view.
type WeekDay struct {
	Label    string `json:"label" yaml:"label"`
	Date     string `json:"date" yaml:"date"`
	SavedMin int    `json:"saved_min" yaml:"saved_min"`
	IsToday  bool   `json:"is_today" yaml:"is_today"`
	ShowLive bool   `json:"show_live" yaml:"show_live"`
	LiveMin  int    `json:"live_min,omitempty" yaml:"live_min,omitempty"`
	// DiffMin is how far live time is ahead of the saved value. Zero unless
	// both saved and live minutes exist.
	DiffMin int `json:"diff_min,omitempty" yaml:"diff_min,omitempty"`
}

// WeekView is the Monday–Sunday summary. TotalMin counts saved minutes only.
type WeekView struct {
	WeekStart string    `json:"week_start" yaml:"week_start"`
	Days      []WeekDay `json:"days" yaml:"days"`
	TotalMin  int       `json:"total_min" yaml:"total_min"`
	Empty     bool      `json:"empty" yaml:"empty"`
}
