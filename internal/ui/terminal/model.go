package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stoicfocus/internal/core/model"
	"stoicfocus/internal/core/timekeeper"
)

const (
	fieldFocus = iota
	fieldBreak
	fieldIntervals
	fieldCount
)

const maxBarWidth = 48

var fieldLabels = [fieldCount]string{"Focus (minutes)", "Break (minutes)", "Intervals"}

// Controller is the subset of the timekeeper driven by key presses.
type Controller interface {
	Toggle()
	Reset()
	InputChanged()
	DismissQuote()
}

// redrawMsg tells the model the screen state changed.
type redrawMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	screen     *Screen
	controller Controller
	keys       keyMap
	help       help.Model
	bar        progress.Model
	inputs     [fieldCount]textinput.Model
	editing    bool
	field      int
	width      int
}

// NewModel creates the root model.
func NewModel(screen *Screen, controller Controller) Model {
	raw := screen.RawSettings()
	values := [fieldCount]string{raw.Focus, raw.Break, raw.Intervals}

	m := Model{
		screen:     screen,
		controller: controller,
		keys:       newKeyMap(),
		help:       help.New(),
		bar:        progress.New(progress.WithSolidFill(colorFocus), progress.WithoutPercentage(), progress.WithWidth(maxBarWidth)),
	}
	for index := range m.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 6
		input.Width = 8
		input.SetValue(values[index])
		m.inputs[index] = input
	}
	return m
}

// Init starts listening for screen changes.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	changed, done := m.screen.Changed(), m.screen.Done()
	return func() tea.Msg {
		select {
		case <-changed:
			return redrawMsg{}
		case <-done:
			return nil
		}
	}
}

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case redrawMsg:
		if m.editing && !m.screen.Snapshot().InputsEnabled {
			m.stopEditing()
		}
		return m, m.listen()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(maxBarWidth, max(10, msg.Width-8))
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateIdle(msg)
	}
	return m, nil
}

func (m Model) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.screen.Snapshot()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case view.Quote != nil && key.Matches(msg, m.keys.Dismiss):
		m.controller.DismissQuote()
	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
	case key.Matches(msg, m.keys.Settings):
		if !view.InputsEnabled {
			return m, nil
		}
		m.editing = true
		m.field = fieldFocus
		return m, m.inputs[m.field].Focus()
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Done):
		m.stopEditing()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.inputs[m.field].Blur()
		m.field = (m.field + 1) % fieldCount
		return m, m.inputs[m.field].Focus()
	}

	before := m.inputs[m.field].Value()
	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	if m.inputs[m.field].Value() != before {
		m.screen.SetRawSettings(m.rawSettings())
		m.controller.InputChanged()
	}
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	for index := range m.inputs {
		m.inputs[index].Blur()
	}
}

func (m Model) rawSettings() model.RawSettings {
	return model.RawSettings{
		Focus:     m.inputs[fieldFocus].Value(),
		Break:     m.inputs[fieldBreak].Value(),
		Intervals: m.inputs[fieldIntervals].Value(),
	}
}

// View renders the timer.
func (m Model) View() string {
	view := m.screen.Snapshot()

	title := titleStyle.Render("Stoic Focus")
	if view.Icon == timekeeper.IconPause {
		title = fadedTitle.Render("Stoic Focus")
	}

	stroke := colorFocus
	if view.Phase == timekeeper.PhaseBreak {
		stroke = colorBreak
	}
	bar := m.bar
	bar.FullColor = stroke

	state := "paused"
	if view.Icon == timekeeper.IconPause {
		state = "running"
	}

	sections := []string{
		title,
		phaseStyle(stroke).Render(view.Phase.Label()) + helpStyle.Render(" · "+state),
		clockStyle.Render(view.TimeText),
		bar.ViewAs(view.Progress),
		"",
		m.settingsView(view),
	}
	if view.Quote != nil {
		sections = append(sections, "", quoteView(*view.Quote))
	}
	sections = append(sections, "", m.help.ShortHelpView(m.helpBindings(view)))
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) settingsView(view View) string {
	values := [fieldCount]string{view.Raw.Focus, view.Raw.Break, view.Raw.Intervals}
	lines := make([]string, 0, fieldCount)
	for index, label := range fieldLabels {
		value := values[index]
		if m.editing {
			value = m.inputs[index].View()
		} else if !view.InputsEnabled {
			value = helpStyle.Render(value)
		}
		lines = append(lines, labelStyle.Render(label)+value)
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpBindings(view View) []key.Binding {
	if m.editing {
		return []key.Binding{m.keys.Next, m.keys.Done}
	}
	bindings := []key.Binding{m.keys.Toggle, m.keys.Reset}
	if view.InputsEnabled {
		bindings = append(bindings, m.keys.Settings)
	}
	if view.Quote != nil {
		bindings = append(bindings, m.keys.Dismiss)
	}
	return append(bindings, m.keys.Quit)
}

func quoteView(quote model.Quote) string {
	body := `"` + quote.Text + `"` + "\n\n" + authorStyle.Render("- "+quote.Author)
	return quoteStyle.Render(body)
}
