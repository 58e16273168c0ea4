package tray

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoicfocus/internal/core/timekeeper"
)

type fakeDesktop struct {
	menus []*fyne.Menu
}

func (desktop *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) {
	desktop.menus = append(desktop.menus, menu)
}

func (desktop *fakeDesktop) SetSystemTrayIcon(fyne.Resource) {}

func (desktop *fakeDesktop) SetSystemTrayWindow(fyne.Window) {}

func (desktop *fakeDesktop) last() *fyne.Menu {
	return desktop.menus[len(desktop.menus)-1]
}

func TestManager_MenuItems(t *testing.T) {
	app := &fakeDesktop{}
	New(app, Callbacks{})

	require.NotEmpty(t, app.menus)
	var labels []string
	for _, item := range app.last().Items {
		if !item.IsSeparator {
			labels = append(labels, item.Label)
		}
	}
	assert.Equal(t, []string{"Status: ready", "Show window", "Start", "Reset", "Quit"}, labels)
}

func TestManager_UpdateFromSnapshot(t *testing.T) {
	manager := New(&fakeDesktop{}, Callbacks{})

	manager.Update(timekeeper.Snapshot{Running: true, Phase: timekeeper.PhaseFocus, TimeLeft: 24*time.Minute + 5*time.Second})
	assert.Equal(t, "Status: Focus 24:05", manager.Status())
	assert.Equal(t, "Pause", manager.ToggleLabel())

	manager.Update(timekeeper.Snapshot{Running: false, Phase: timekeeper.PhaseFocus, TimeLeft: 90 * time.Second})
	assert.Equal(t, "Status: Focus 1:30 (paused)", manager.Status())
	assert.Equal(t, "Start", manager.ToggleLabel())
}

func TestManager_ActionsInvokeCallbacks(t *testing.T) {
	app := &fakeDesktop{}
	var shown, toggled, reset, quit int
	New(app, Callbacks{
		OnShow:   func() { shown++ },
		OnToggle: func() { toggled++ },
		OnReset:  func() { reset++ },
		OnQuit:   func() { quit++ },
	})

	for _, item := range app.last().Items {
		if item.Action != nil {
			item.Action()
		}
	}
	assert.Equal(t, []int{1, 1, 1, 1}, []int{shown, toggled, reset, quit})
}
