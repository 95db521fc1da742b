package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katemerritt/growthlog/internal/app"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	todayEntries []*model.Entry
	streaks      []*model.Streak
	activeGoals  []*model.Goal
	quote        motivation.Quote

	// Application
	app *app.App

	// UI state
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
	maxTodayEntries int
	maxGoals        int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	App             *app.App
	RefreshInterval time.Duration
	MaxTodayEntries int
	MaxGoals        int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.MaxTodayEntries == 0 {
		config.MaxTodayEntries = 5
	}
	if config.MaxGoals == 0 {
		config.MaxGoals = 3
	}

	return &DashboardModel{
		app:             config.App,
		refreshInterval: config.RefreshInterval,
		maxTodayEntries: config.MaxTodayEntries,
		maxGoals:        config.MaxGoals,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "a":
		// Adding entries happens through the CLI
		m.setMessage("Use 'growthlog add <category> <mood> <content>' to log", 3*time.Second)
		return m, nil

	case "r":
		// Refresh data
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Header
	header := m.renderHeader()
	sections = append(sections, header)

	// Error message
	if m.err != nil {
		errBox := StyleError.Render(fmt.Sprintf("Error: %v", m.err))
		sections = append(sections, errBox)
	}

	// Status message
	if m.message != "" {
		msgBox := StyleWarning.Render(m.message)
		sections = append(sections, msgBox)
	}

	// Today's entries
	todayComp := NewTodayComponent(m.todayEntries, m.width, m.maxTodayEntries)
	sections = append(sections, todayComp.View())

	// Streaks
	streaksComp := NewStreaksComponent(m.streaks, m.width)
	sections = append(sections, streaksComp.View())

	// Goal progress
	goals := m.activeGoals
	if len(goals) > m.maxGoals {
		goals = goals[:m.maxGoals]
	}
	for _, goal := range goals {
		goalComp := NewGoalComponent(goal, m.width)
		goalView := goalComp.View()
		if goalView != "" {
			sections = append(sections, goalView)
		}
	}

	// Quote of the day
	sections = append(sections, QuoteLine(m.quote))

	// Help bar
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Growthlog Dashboard")
	now := time.Now().Format("Mon Jan 2, 15:04:05")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// loadData recomputes streaks and pulls a fresh snapshot.
func (m *DashboardModel) loadData() {
	if _, err := m.app.RefreshStreaks(); err != nil {
		m.err = err
		return
	}

	snap := m.app.Snapshot()
	m.todayEntries = snap.TodayEntries
	m.streaks = snap.Streaks
	m.activeGoals = snap.ActiveGoals
	m.quote = motivation.DailyQuote(time.Now())
	m.err = nil
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
