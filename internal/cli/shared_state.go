package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// chromeHeight is the number of lines used by the header and status bar.
const chromeHeight = 4

// ContentHeight is the space left for the active view.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-chromeHeight, 0)
}
