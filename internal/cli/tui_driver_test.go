package cli

import (
	"testing"

	"github.com/alexanderramin/zeitrechner/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel, sizes the terminal and drains Init,
// which loads the first snapshot synchronously from in-memory SQLite.
func NewTestDriver(t *testing.T, a *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(a), teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

func (d *TestDriver) StackDepth() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) Dashboard() *dashboardView {
	m := d.appModel()
	return m.dashboard().(*dashboardView)
}

// Plain returns the rendered screen without ANSI escapes.
func (d *TestDriver) Plain() string {
	return stripANSI(d.View())
}

// Tick delivers the dashboard's current tick as if its timer fired.
func (d *TestDriver) Tick() {
	d.T.Helper()
	d.Send(tickMsg{seq: d.Dashboard().tickSeq})
}

// ExpireFlash delivers the current flash expiry.
func (d *TestDriver) ExpireFlash() {
	d.T.Helper()
	d.Send(flashExpiredMsg{seq: d.Dashboard().flashSeq})
}
