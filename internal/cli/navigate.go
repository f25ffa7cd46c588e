package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages handled by appModel.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

// wizardCompleteMsg pops the wizard view and then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// weeklyChangedMsg is sent by the watcher when another process rewrote the
// weekly log.
type weeklyChangedMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}
