// Package tui provides a Bubble Tea terminal user interface for reviewing and
// applying a batch of renames.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/namechange/internal/batch"
	"github.com/handiism/namechange/internal/config"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StatePlanning
	StateReview
	StateApplying
	StateComplete
	StateError
)

// maxLogs is how many progress messages stay on screen.
const maxLogs = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   batch.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	dir       string
	logs      []LogEntry
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *batch.Manager
	events  chan batch.ProgressEvent

	// Review state. pending indexes the plans that rename a file; current
	// is the position in pending awaiting a decision.
	plans     []batch.Plan
	pending   []int
	current   int
	decisions map[string]bool

	processed int32
	total     int32
	stats     batch.Stats

	width  int
	height int
}

// NewModel creates a new TUI model for dir. An empty dir makes the UI ask
// for one first.
func NewModel(settings *config.Settings, dir string) Model {
	ti := textinput.New()
	ti.Placeholder = "/music/Artist/Album"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	state := StatePlanning
	if dir == "" {
		state = StateInput
	}

	return Model{
		state:     state,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		dir:       dir,
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan batch.ProgressEvent, 100),
		decisions: make(map[string]bool),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.state == StatePlanning {
		return tea.Batch(m.startPlan(), m.spinner.Tick, m.waitForEvent())
	}
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries a progress event from the batch manager.
	ProgressMsg struct {
		Event batch.ProgressEvent
	}

	// PlanDoneMsg is sent when the new names have been computed.
	PlanDoneMsg struct {
		Manager *batch.Manager
		Plans   []batch.Plan
		Err     error
	}

	// ApplyDoneMsg is sent when the accepted renames have been carried out.
	ApplyDoneMsg struct {
		Stats batch.Stats
		Err   error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StatePlanning, StateReview, StateApplying:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
				return m, nil
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.dir = strings.TrimSpace(m.textInput.Value())
				m.state = StatePlanning
				return m, tea.Batch(m.startPlan(), m.spinner.Tick, m.waitForEvent())
			}

		case "y":
			if m.state == StateReview {
				return m.decide(true)
			}

		case "n":
			if m.state == StateReview {
				return m.decide(false)
			}

		case "a":
			if m.state == StateReview {
				for _, i := range m.pending[m.current:] {
					m.decisions[m.plans[i].OldName] = true
				}
				m.current = len(m.pending)
				return m.beginApply()
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level != batch.LevelVerbose || m.settings.Verbose {
			m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
			if len(m.logs) > maxLogs {
				m.logs = m.logs[len(m.logs)-maxLogs:]
			}
		}
		cmds = append(cmds, m.waitForEvent())

	case PlanDoneMsg:
		if m.state != StatePlanning {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.manager = msg.Manager
		m.plans = msg.Plans
		m.pending = m.pending[:0]
		for i, plan := range m.plans {
			if plan.Status == batch.StatusRename {
				m.pending = append(m.pending, i)
			}
		}
		m.current = 0
		if len(m.pending) == 0 || m.settings.AssumeYes {
			for _, i := range m.pending {
				m.decisions[m.plans[i].OldName] = true
			}
			m.current = len(m.pending)
			return m.beginApply()
		}
		m.state = StateReview

	case ApplyDoneMsg:
		if m.state != StateApplying {
			return m, nil
		}
		m.stats = msg.Stats
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateApplying {
			m.processed, m.total = m.manager.GetProgress()
			var percent float64
			if m.total > 0 {
				percent = float64(m.processed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// decide records the answer for the current rename and moves on.
func (m Model) decide(accept bool) (tea.Model, tea.Cmd) {
	if m.current < len(m.pending) {
		m.decisions[m.plans[m.pending[m.current]].OldName] = accept
		m.current++
	}
	if m.current >= len(m.pending) {
		return m.beginApply()
	}
	return m, nil
}

func (m Model) beginApply() (tea.Model, tea.Cmd) {
	m.state = StateApplying
	return m, tea.Batch(m.startApply(), m.tickProgress())
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent delivers the next progress event from the manager.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case event := <-events:
			return ProgressMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ namechange"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Rename MP3 files to a consistent pattern"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StatePlanning:
		b.WriteString(m.viewPlanning())
	case StateReview:
		b.WriteString(m.viewReview())
	case StateApplying:
		b.WriteString(m.viewApplying())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter album directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Format: %s", strings.Join(m.settings.Format, " "))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewPlanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading " + m.dir + "..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder

	plan := m.plans[m.pending[m.current]]
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Rename %d of %d:", m.current+1, len(m.pending))))
	b.WriteString("\n\n")
	b.WriteString("  " + plan.OldName + "\n")
	b.WriteString(nameStyle.Render("  → " + plan.NewName))
	b.WriteString("\n\n")

	if next := m.pending[m.current+1:]; len(next) > 0 {
		b.WriteString(dimStyle.Render("Up next:"))
		b.WriteString("\n")
		for _, i := range next[:min(len(next), 5)] {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s → %s", m.plans[i].OldName, m.plans[i].NewName)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewApplying() string {
	var b strings.Builder

	var percent float64
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.processed, m.total)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	title := "✓ Rename Complete!"
	if m.settings.DryRun {
		title = "✓ Dry Run Complete! Nothing was renamed."
	}
	box := boxStyle.Render(fmt.Sprintf(
		"%s\n\n"+
			"Renamed: %d\n"+
			"Declined: %d\n"+
			"Skipped: %d\n"+
			"Failed: %d",
		title,
		m.stats.Renamed,
		m.stats.Declined,
		m.stats.Skipped,
		m.stats.Failed,
	))
	return box + "\n\n" + m.renderLogs()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case batch.LevelError:
			style = errorStyle
			prefix = "✗"
		case batch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case batch.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case batch.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • esc: quit"
	case StateReview:
		return "y: rename • n: keep name • a: rename all remaining • esc: cancel"
	case StatePlanning, StateApplying:
		return "esc: cancel"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// startPlan creates the manager and computes the new names.
func (m Model) startPlan() tea.Cmd {
	ctx, settings, dir, events := m.ctx, m.settings, m.dir, m.events
	return func() tea.Msg {
		manager, err := batch.NewManager(settings, func(event batch.ProgressEvent) {
			select {
			case events <- event:
			default:
			}
		})
		if err != nil {
			return PlanDoneMsg{Err: err}
		}
		plans, err := manager.Plan(ctx, dir)
		return PlanDoneMsg{Manager: manager, Plans: plans, Err: err}
	}
}

// startApply carries out the accepted renames in the background.
func (m Model) startApply() tea.Cmd {
	ctx, settings, dir, manager, plans := m.ctx, m.settings, m.dir, m.manager, m.plans
	decisions := make(map[string]bool, len(m.decisions))
	for name, accept := range m.decisions {
		decisions[name] = accept
	}
	return func() tea.Msg {
		if manager == nil {
			return ApplyDoneMsg{Err: fmt.Errorf("no manager")}
		}
		if settings.DryRun {
			return ApplyDoneMsg{Stats: dryRunStats(plans, decisions)}
		}
		stats, err := manager.Apply(ctx, dir, plans, func(p batch.Plan) bool {
			return decisions[p.OldName]
		})
		return ApplyDoneMsg{Stats: stats, Err: err}
	}
}

// dryRunStats counts what Apply would do with the given decisions.
func dryRunStats(plans []batch.Plan, decisions map[string]bool) batch.Stats {
	var stats batch.Stats
	for _, plan := range plans {
		switch plan.Status {
		case batch.StatusSkipped:
			stats.Skipped++
		case batch.StatusFailed:
			stats.Failed++
		case batch.StatusRename:
			if decisions[plan.OldName] {
				stats.Renamed++
			} else {
				stats.Declined++
			}
		}
	}
	return stats
}

// Run starts the TUI for dir.
func Run(settings *config.Settings, dir string) error {
	p := tea.NewProgram(NewModel(settings, dir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
