package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/zeitrechner/internal/cli/formatter"
	"github.com/alexanderramin/zeitrechner/internal/contract"
	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/alexanderramin/zeitrechner/internal/timecalc"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a confirmation label stays visible. The action
// that triggered it is disabled meanwhile.
const flashDuration = 1400 * time.Millisecond

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardMsg marks messages that belong to the dashboard even while another
// view is on top of the stack.
type dashboardMsg interface {
	dashboardMsg()
}

// snapshotLoadedMsg carries a recomputed session and the week rendered
// against it. seq is the load generation; a result older than the last
// applied one is dropped.
type snapshotLoadedMsg struct {
	seq   int
	input domain.SessionInput
	state domain.SessionState
	week  *contract.WeekView
	err   error
}

// weekLoadedMsg carries a re-rendered week for the current snapshot.
type weekLoadedMsg struct {
	week *contract.WeekView
	err  error
}

// tickMsg fires the periodic recompute. Ticks from an older generation are
// dropped.
type tickMsg struct {
	seq int
}

type actionDoneMsg struct {
	action string
	flash  string
	err    error
}

type flashExpiredMsg struct {
	seq int
}

func (snapshotLoadedMsg) dashboardMsg() {}
func (weekLoadedMsg) dashboardMsg()     {}
func (tickMsg) dashboardMsg()           {}
func (actionDoneMsg) dashboardMsg()     {}
func (flashExpiredMsg) dashboardMsg()   {}
func (weeklyChangedMsg) dashboardMsg()  {}

const (
	actionSave  = "save"
	actionClear = "clear"
)

// ── key bindings ─────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	StartNow key.Binding
	Edit     key.Binding
	Save     key.Binding
	Clear    key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

var dashboardKeys = dashboardKeyMap{
	StartNow: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "start jetzt")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "bearbeiten")),
	Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "heute speichern")),
	Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "woche zuruecksetzen")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "aktualisieren")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "beenden")),
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: the live session outputs, the timeline
// and the weekly list. It owns the single session snapshot.
type dashboardView struct {
	state   *SharedState
	loading bool
	err     error

	input    domain.SessionInput
	snapshot domain.SessionState
	week     *contract.WeekView

	tickSeq    int
	loadSeq    int
	appliedSeq int

	flash       string
	flashAction string
	flashSeq    int

	vp viewport.Model
}

func newDashboardView(state *SharedState) *dashboardView {
	vp := viewport.New(0, 0)
	vp.KeyMap = dashboardViewportKeyMap()
	return &dashboardView{
		state:   state,
		loading: true,
		vp:      vp,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }

func (v *dashboardView) ShortHelp() []key.Binding {
	k := dashboardKeys
	return []key.Binding{k.StartNow, k.Edit, k.Save, k.Clear, k.Refresh, k.Quit}
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(v.recompute(), v.armTick())
}

// ── commands ─────────────────────────────────────────────────────────────────

// armTick starts a new tick generation. Ticks of earlier generations are
// ignored when they arrive.
func (v *dashboardView) armTick() tea.Cmd {
	v.tickSeq++
	return v.nextTick()
}

func (v *dashboardView) nextTick() tea.Cmd {
	seq := v.tickSeq
	return tea.Tick(v.state.App.tickInterval(), func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (v *dashboardView) recompute() tea.Cmd {
	return v.load(nil)
}

// load runs prepare, if any, and then loads a fresh snapshot tagged with a
// new load generation.
func (v *dashboardView) load(prepare func(context.Context) error) tea.Cmd {
	v.loadSeq++
	seq := v.loadSeq
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		if prepare != nil {
			if err := prepare(ctx); err != nil {
				return snapshotLoadedMsg{seq: seq, err: err}
			}
		}
		msg := loadSnapshot(ctx, app)
		msg.seq = seq
		return msg
	}
}

func loadSnapshot(ctx context.Context, app *App) snapshotLoadedMsg {
	in, state, err := app.Sessions.Snapshot(ctx)
	if err != nil {
		return snapshotLoadedMsg{err: err}
	}
	week, err := app.Weekly.Week(ctx, state)
	if err != nil {
		return snapshotLoadedMsg{err: err}
	}
	return snapshotLoadedMsg{input: in, state: state, week: week}
}

// reloadWeek re-renders the week against the current snapshot without
// recomputing it.
func (v *dashboardView) reloadWeek() tea.Cmd {
	app := v.state.App
	snapshot := v.snapshot
	return func() tea.Msg {
		week, err := app.Weekly.Week(context.Background(), snapshot)
		return weekLoadedMsg{week: week, err: err}
	}
}

func (v *dashboardView) startNow() tea.Cmd {
	app := v.state.App
	return v.load(func(ctx context.Context) error {
		_, err := app.Sessions.SetStartToNow(ctx)
		return err
	})
}

// saveInputs stores edited inputs, reloads the snapshot and restarts the
// tick generation.
func (v *dashboardView) saveInputs(in domain.SessionInput) tea.Cmd {
	app := v.state.App
	reload := v.load(func(ctx context.Context) error {
		return app.Sessions.UpdateInputs(ctx, in)
	})
	return tea.Batch(reload, v.armTick())
}

func (v *dashboardView) save() tea.Cmd {
	app := v.state.App
	snapshot := v.snapshot
	return func() tea.Msg {
		result, err := app.saveTodayUseCase().SaveToday(context.Background(), snapshot)
		if err != nil {
			return actionDoneMsg{action: actionSave, err: err}
		}
		if !result.Saved {
			return actionDoneMsg{action: actionSave}
		}
		return actionDoneMsg{action: actionSave, flash: flashSaved}
	}
}

func (v *dashboardView) clearWeek() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		_, err := app.clearWeekUseCase().ClearCurrentWeek(context.Background())
		if err != nil {
			return actionDoneMsg{action: actionClear, err: err}
		}
		return actionDoneMsg{action: actionClear, flash: flashCleared}
	}
}

func (v *dashboardView) showFlash(action, text string) tea.Cmd {
	v.flash = text
	v.flashAction = action
	v.flashSeq++
	seq := v.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.refreshContent()
		return v, nil

	case snapshotLoadedMsg:
		if msg.seq <= v.appliedSeq {
			return v, nil
		}
		v.appliedSeq = msg.seq
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.input = msg.input
			v.snapshot = msg.state
			v.week = msg.week
		}
		v.refreshContent()
		return v, nil

	case weekLoadedMsg:
		v.err = msg.err
		if msg.err == nil {
			v.week = msg.week
		}
		v.refreshContent()
		return v, nil

	case tickMsg:
		if msg.seq != v.tickSeq {
			return v, nil
		}
		return v, tea.Batch(v.recompute(), v.nextTick())

	case weeklyChangedMsg:
		return v, v.reloadWeek()

	case actionDoneMsg:
		if msg.err != nil {
			v.err = msg.err
			v.refreshContent()
			return v, nil
		}
		var cmd tea.Cmd
		if msg.flash != "" {
			cmd = v.showFlash(msg.action, msg.flash)
		}
		v.refreshContent()
		return v, tea.Batch(cmd, v.reloadWeek())

	case flashExpiredMsg:
		if msg.seq == v.flashSeq {
			v.flash = ""
			v.flashAction = ""
			v.refreshContent()
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := dashboardKeys
	switch {
	case key.Matches(msg, k.StartNow):
		return v, tea.Batch(v.startNow(), v.armTick())

	case key.Matches(msg, k.Edit):
		return v, pushView(newInputsWizard(v.state, v.input, v.saveInputs))

	case key.Matches(msg, k.Save):
		if v.flashAction == actionSave {
			return v, nil
		}
		return v, v.save()

	case key.Matches(msg, k.Clear):
		if v.flashAction == actionClear {
			return v, nil
		}
		return v, v.clearWeek()

	case key.Matches(msg, k.Refresh):
		return v, tea.Batch(v.recompute(), v.armTick())
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) content() string {
	if v.loading {
		return "\n  " + formatter.Dim("Lade...")
	}

	var b strings.Builder
	if v.err != nil {
		b.WriteString(formatter.StyleRed.Render("Fehler: "+v.err.Error()) + "\n\n")
	}

	view := timecalc.BuildSessionView(v.input, v.snapshot)
	b.WriteString(formatter.FormatInputs(view) + "\n\n")
	b.WriteString(formatter.FormatSession(view))
	b.WriteString("\n")
	if v.week != nil {
		b.WriteString(formatter.FormatWeek(*v.week))
	}
	if v.flash != "" {
		b.WriteString("\n" + formatter.StyleGreen.Bold(true).Render(v.flash) + "\n")
	}
	return b.String()
}

func (v *dashboardView) refreshContent() {
	v.vp.SetContent(v.content())
}

func (v *dashboardView) View() string {
	if v.vp.Height == 0 {
		return v.content()
	}
	return v.vp.View()
}

// dashboardViewportKeyMap only scrolls on arrow and page keys so letter keys
// stay free for actions.
func dashboardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}
