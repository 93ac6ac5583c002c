package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/avtools/tamscout/internal/api"
	"github.com/avtools/tamscout/internal/models"
	"github.com/avtools/tamscout/internal/paging"
)

const flowPageSize = 25

// FlowBrowserModel is the TUI model for browsing a source's flows
type FlowBrowserModel struct {
	PageState
	client  *api.Client
	logger  *log.Logger
	source  *models.Source // nil = all flows in the store
	table   table.Model
	spinner spinner.Model

	flows []models.Flow
	page  paging.Page
	opts  paging.FilterOptions

	loading bool
	err     error

	selectedFlow *models.Flow // set when the user opens a flow's segments
}

// flowsLoadedMsg is sent when a page of flows is ready
type flowsLoadedMsg struct {
	result *api.FlowsPage
	err    error
}

// NewFlowBrowserModel creates the flow browser page. source scopes the
// listing; pass nil to browse every flow in the store.
func NewFlowBrowserModel(client *api.Client, logger *log.Logger, source *models.Source) FlowBrowserModel {
	layout := DefaultLayout()

	t := table.New(
		table.WithColumns(flowColumns(layout.TableWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)

	opts := paging.FilterOptions{Limit: flowPageSize}
	if source != nil {
		opts.Custom = map[string]string{"source_id": source.ID}
	}

	return FlowBrowserModel{
		PageState: NewPageState(layout),
		client:    client,
		logger:    logger,
		source:    source,
		table:     t,
		spinner:   NewAppSpinner(),
		opts:      opts,
		loading:   true,
	}
}

func flowColumns(tableWidth int) []table.Column {
	idW, formatW, codecW := 38, 24, 18
	labelW := tableWidth - idW - formatW - codecW - 6
	if labelW < 12 {
		labelW = 12
	}
	return []table.Column{
		{Title: "ID", Width: idW},
		{Title: "Label", Width: labelW},
		{Title: "Format", Width: formatW},
		{Title: "Codec", Width: codecW},
	}
}

func (m FlowBrowserModel) fetchFlows(opts paging.FilterOptions) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.ListFlows(opts)
		return flowsLoadedMsg{result: result, err: err}
	}
}

// Init implements tea.Model
func (m FlowBrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchFlows(m.opts))
}

// Update implements tea.Model
func (m FlowBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearExpiredStatus()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			m.table.SetHeight(m.Layout.TableHeight)
			m.table.SetColumns(flowColumns(m.Layout.TableWidth))
			m.updateRows()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case flowsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.flows = msg.result.Flows
		m.page = msg.result.Page
		m.updateRows()
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.Quitting = true
			m.ReturnToMenu = true
			return m, tea.Quit

		case "r":
			m.loading = true
			return m, m.fetchFlows(m.opts)

		case "up", "k":
			m.table.MoveUp(1)
			return m, nil

		case "down", "j":
			m.table.MoveDown(1)
			return m, nil

		case "s":
			// Save a QR code for the selected flow's share URL
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.flows) {
				path, err := SaveFlowQR(m.client.BaseURL(), m.flows[cursor].ID)
				if err != nil {
					m.SetError(fmt.Sprintf("QR export failed: %v", err))
				} else {
					m.SetStatus(fmt.Sprintf("QR saved to %s", path), statusDuration)
				}
			}
			return m, nil

		case "enter":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.flows) {
				selected := m.flows[cursor]
				m.selectedFlow = &selected
				m.Quitting = true
				return m, tea.Quit
			}
			return m, nil

		default:
			if cursor, ok := CursorForKey(m.page, key); ok {
				m.loading = true
				return m, m.fetchFlows(m.opts.WithPage(cursor))
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *FlowBrowserModel) updateRows() {
	rows := make([]table.Row, 0, len(m.flows))
	cols := flowColumns(m.Layout.TableWidth)
	for _, f := range m.flows {
		rows = append(rows, table.Row{
			f.ID,
			truncate(f.Label, cols[1].Width),
			truncate(f.Format, cols[2].Width),
			truncate(f.Codec, cols[3].Width),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View implements tea.Model
func (m FlowBrowserModel) View() string {
	if m.Quitting {
		return ""
	}

	title := "Flows"
	if m.source != nil {
		name := m.source.Label
		if name == "" {
			name = m.source.ID
		}
		title = fmt.Sprintf("Flows of %s", name)
	}

	var content strings.Builder
	content.WriteString(RenderTitle(m.Layout, title))

	if m.loading {
		content.WriteString(m.spinner.View())
		content.WriteString(" ")
		content.WriteString(HintStyle.Render("Loading flows..."))
	} else if m.err != nil {
		content.WriteString(ErrorStyle.Render(fmt.Sprintf(" Error: %v", m.err)))
	} else {
		content.WriteString(m.table.View())
		content.WriteString("\n\n ")
		content.WriteString(RenderPager(m.page))
		if status := m.RenderStatus(); status != "" {
			content.WriteString("\n ")
			content.WriteString(status)
		}
	}

	helpText := "Enter: segments | s: save QR | n/p/f/l: page | r: reload | Esc: back"
	return RenderFrame(m.Layout, content.String(), helpText)
}

// RunFlowBrowser runs the flow browser for a source, descending into the
// segment list when a flow is opened.
func RunFlowBrowser(client *api.Client, logger *log.Logger, source *models.Source) error {
	for {
		model := NewFlowBrowserModel(client, logger, source)
		finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("flow browser error: %w", err)
		}

		final := finalModel.(FlowBrowserModel)
		if final.selectedFlow == nil {
			return nil
		}
		if err := RunSegmentList(client, logger, final.selectedFlow); err != nil {
			return err
		}
	}
}
