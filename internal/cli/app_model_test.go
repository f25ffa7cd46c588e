package cli

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func TestNewAppModelStartsAtDashboard(t *testing.T) {
	m := newAppModel(testApp(t).app)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewDashboard, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t).app)
	form := newStubView(ViewForm, "Eingaben", "form view")

	model, cmd := m.Update(pushViewMsg{view: form})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, form, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewDashboard, m.activeView().ID())

	// The dashboard is never popped.
	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_WindowResizeReachesEveryView(t *testing.T) {
	m := newAppModel(testApp(t).app)
	bottom := newStubView(ViewDashboard, "", "dashboard")
	top := newStubView(ViewForm, "Eingaben", "form")
	m.viewStack = []View{bottom, top}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Len(t, bottom.updateSeen, 1)
	assert.Len(t, top.updateSeen, 1)
}

func TestAppModel_DashboardMessagesBypassOverlay(t *testing.T) {
	m := newAppModel(testApp(t).app)
	bottom := newStubView(ViewDashboard, "", "dashboard")
	top := newStubView(ViewForm, "Eingaben", "form")
	m.viewStack = []View{bottom, top}

	model, _ := m.Update(tickMsg{seq: 1})
	m = model.(appModel)
	model, _ = m.Update(weeklyChangedMsg{})
	m = model.(appModel)

	require.Len(t, bottom.updateSeen, 2)
	assert.Equal(t, tickMsg{seq: 1}, bottom.updateSeen[0])
	assert.Empty(t, top.updateSeen)
	assert.Equal(t, top, m.activeView())
}

func TestAppModel_KeyHandling(t *testing.T) {
	t.Run("q quits on the dashboard", func(t *testing.T) {
		m := newAppModel(testApp(t).app)
		m.viewStack = []View{newStubView(ViewDashboard, "", "dashboard")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("form receives q and does not quit", func(t *testing.T) {
		m := newAppModel(testApp(t).app)
		v := newStubView(ViewForm, "Eingaben", "form")
		m.viewStack = []View{newStubView(ViewDashboard, "", "dashboard"), v}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.False(t, m.quitting)
		require.Len(t, v.updateSeen, 1)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := newAppModel(testApp(t).app)
		m.viewStack = []View{newStubView(ViewDashboard, "", "dashboard"), newStubView(ViewForm, "Eingaben", "form")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})
}

func TestAppModel_WizardCompletePopsAndRunsNext(t *testing.T) {
	m := newAppModel(testApp(t).app)
	m.viewStack = []View{newStubView(ViewDashboard, "", "dashboard"), newStubView(ViewForm, "Eingaben", "form")}

	ran := false
	next := func() tea.Msg { ran = true; return nil }

	model, cmd := m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, ran)
}

func TestAppModel_ViewShowsBreadcrumbsAndHints(t *testing.T) {
	m := newAppModel(testApp(t).app)
	form := newStubView(ViewForm, "Eingaben", "form body")
	form.shortHelp = []key.Binding{key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "abbrechen"))}
	m.viewStack = []View{newStubView(ViewDashboard, "", "dashboard"), form}

	out := stripANSI(m.View())
	assert.Contains(t, out, "zeitrechner › Eingaben")
	assert.Contains(t, out, "form body")
	assert.Contains(t, out, "esc: abbrechen")
	assert.NotContains(t, out, "dashboard")
}
