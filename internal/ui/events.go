package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/avtools/tamscout/internal/db"
	"github.com/avtools/tamscout/internal/models"
)

const eventListLimit = 200

// EventLogModel is the TUI model for the local event history
type EventLogModel struct {
	PageState
	database *db.DB
	logger   *log.Logger
	table    table.Model
	spinner  spinner.Model

	events  []models.EventRecord
	total   int
	loading bool
	err     error
}

// eventsLoadedMsg is sent when the history rows are ready
type eventsLoadedMsg struct {
	events []models.EventRecord
	total  int
	err    error
}

// NewEventLogModel creates the event history page
func NewEventLogModel(database *db.DB, logger *log.Logger) EventLogModel {
	layout := DefaultLayout()

	t := table.New(
		table.WithColumns(eventColumns(layout.TableWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)

	return EventLogModel{
		PageState: NewPageState(layout),
		database:  database,
		logger:    logger,
		table:     t,
		spinner:   NewAppSpinner(),
		loading:   true,
	}
}

func eventColumns(tableWidth int) []table.Column {
	receivedW, typeW, timerangeW := 20, 24, 24
	entityW := tableWidth - receivedW - typeW - timerangeW - 6
	if entityW < 16 {
		entityW = 16
	}
	return []table.Column{
		{Title: "Received", Width: receivedW},
		{Title: "Type", Width: typeW},
		{Title: "Flow / Source", Width: entityW},
		{Title: "Timerange", Width: timerangeW},
	}
}

func (m EventLogModel) loadEvents() tea.Cmd {
	database := m.database
	return func() tea.Msg {
		events, err := database.ListEvents(eventListLimit)
		if err != nil {
			return eventsLoadedMsg{err: err}
		}
		total, err := database.CountEvents()
		return eventsLoadedMsg{events: events, total: total, err: err}
	}
}

// Init implements tea.Model
func (m EventLogModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadEvents())
}

// Update implements tea.Model
func (m EventLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearExpiredStatus()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			m.table.SetHeight(m.Layout.TableHeight)
			m.table.SetColumns(eventColumns(m.Layout.TableWidth))
			m.updateRows()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.events = msg.events
		m.total = msg.total
		m.updateRows()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Quitting = true
			m.ReturnToMenu = true
			return m, tea.Quit

		case "r":
			m.loading = true
			return m, m.loadEvents()

		case "e":
			if len(m.events) == 0 {
				m.SetError("nothing to export")
				return m, nil
			}
			filename, err := ExportEventsMarkdown(m.events)
			if err != nil {
				m.SetError(fmt.Sprintf("export failed: %v", err))
			} else {
				m.SetStatus(fmt.Sprintf("Exported to %s", filename), statusDuration)
			}
			return m, nil

		case "up", "k":
			m.table.MoveUp(1)
			return m, nil

		case "down", "j":
			m.table.MoveDown(1)
			return m, nil
		}
	}

	return m, nil
}

func (m *EventLogModel) updateRows() {
	rows := make([]table.Row, 0, len(m.events))
	cols := eventColumns(m.Layout.TableWidth)
	for _, e := range m.events {
		entity := e.FlowID
		if entity == "" {
			entity = e.SourceID
		}
		rows = append(rows, table.Row{
			e.ReceivedAt.Format("2006-01-02 15:04:05"),
			truncate(e.EventType, cols[1].Width),
			truncate(entity, cols[2].Width),
			truncate(e.Timerange, cols[3].Width),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View implements tea.Model
func (m EventLogModel) View() string {
	if m.Quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(RenderTitle(m.Layout, "Event History"))

	if m.loading {
		content.WriteString(m.spinner.View())
		content.WriteString(" ")
		content.WriteString(HintStyle.Render("Loading events..."))
	} else if m.err != nil {
		content.WriteString(ErrorStyle.Render(fmt.Sprintf(" Error: %v", m.err)))
	} else if len(m.events) == 0 {
		content.WriteString(HintStyle.Render(" No events recorded yet."))
	} else {
		content.WriteString(AccentStyle.Render(fmt.Sprintf(" %d stored, showing newest %d", m.total, len(m.events))))
		content.WriteString("\n\n")
		content.WriteString(m.table.View())
		if status := m.RenderStatus(); status != "" {
			content.WriteString("\n ")
			content.WriteString(status)
		}
	}

	helpText := "e: export markdown | r: reload | Esc: back"
	return RenderFrame(m.Layout, content.String(), helpText)
}

// RunEventLog runs the event history page.
func RunEventLog(database *db.DB, logger *log.Logger) error {
	model := NewEventLogModel(database, logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("event log error: %w", err)
	}
	return nil
}
