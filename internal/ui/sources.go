package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/avtools/tamscout/internal/api"
	"github.com/avtools/tamscout/internal/models"
	"github.com/avtools/tamscout/internal/paging"
)

const sourcePageSize = 25

// SourceBrowserModel is the TUI model for the paginated source browser
type SourceBrowserModel struct {
	PageState
	client    *api.Client
	logger    *log.Logger
	table     table.Model
	textInput textinput.Model
	spinner   spinner.Model

	sources []models.Source
	page    paging.Page
	opts    paging.FilterOptions

	loading   bool
	inputMode bool
	err       error

	selectedSource *models.Source // set when the user opens a source's flows
}

// sourcesLoadedMsg is sent when a page of sources is ready
type sourcesLoadedMsg struct {
	result *api.SourcesPage
	err    error
}

// NewSourceBrowserModel creates the source browser page
func NewSourceBrowserModel(client *api.Client, logger *log.Logger) SourceBrowserModel {
	ti := textinput.New()
	ti.Placeholder = "tag filter, e.g. location=studio-a"
	ti.CharLimit = 128

	layout := DefaultLayout()

	t := table.New(
		table.WithColumns(sourceColumns(layout.TableWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)

	return SourceBrowserModel{
		PageState: NewPageState(layout),
		client:    client,
		logger:    logger,
		table:     t,
		textInput: ti,
		spinner:   NewAppSpinner(),
		opts:      paging.FilterOptions{Limit: sourcePageSize},
		loading:   true,
	}
}

func sourceColumns(tableWidth int) []table.Column {
	// Fixed widths for id/format/updated; label gets the rest
	idW, formatW, updatedW := 38, 26, 20
	labelW := tableWidth - idW - formatW - updatedW - 6
	if labelW < 12 {
		labelW = 12
	}
	return []table.Column{
		{Title: "ID", Width: idW},
		{Title: "Label", Width: labelW},
		{Title: "Format", Width: formatW},
		{Title: "Updated", Width: updatedW},
	}
}

// fetchSources fetches one page of sources with the current options
func (m SourceBrowserModel) fetchSources(opts paging.FilterOptions) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.ListSources(opts)
		return sourcesLoadedMsg{result: result, err: err}
	}
}

// Init implements tea.Model
func (m SourceBrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchSources(m.opts))
}

// Update implements tea.Model
func (m SourceBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearExpiredStatus()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			m.table.SetHeight(m.Layout.TableHeight)
			m.table.SetColumns(sourceColumns(m.Layout.TableWidth))
			m.textInput.Width = m.Layout.InnerWidth - 12
			m.updateRows()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sourcesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.sources = msg.result.Sources
		m.page = msg.result.Page
		m.updateRows()
		return m, nil

	case tea.KeyMsg:
		if m.inputMode {
			return m.updateInputMode(msg)
		}
		return m.updateTableMode(msg)
	}

	return m, nil
}

func (m SourceBrowserModel) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.inputMode = false
		m.opts = m.applyTagFilter(m.textInput.Value())
		m.loading = true
		return m, m.fetchSources(m.opts)
	case "esc":
		m.inputMode = false
		return m, nil
	default:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
}

func (m SourceBrowserModel) updateTableMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.Quitting = true
		m.ReturnToMenu = true
		return m, tea.Quit

	case "/":
		m.inputMode = true
		m.textInput.Focus()
		return m, textinput.Blink

	case "r":
		m.loading = true
		return m, m.fetchSources(m.opts)

	case "up", "k":
		m.table.MoveUp(1)
		return m, nil

	case "down", "j":
		m.table.MoveDown(1)
		return m, nil

	case "enter":
		if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.sources) {
			selected := m.sources[cursor]
			m.selectedSource = &selected
			m.Quitting = true
			return m, tea.Quit
		}
		return m, nil

	default:
		// Pagination keys: each one triggers a fresh fetch from the cursor.
		if cursor, ok := CursorForKey(m.page, key); ok {
			m.loading = true
			return m, m.fetchSources(m.opts.WithPage(cursor))
		}
		return m, nil
	}
}

// applyTagFilter parses "key=value" into a tag filter; a bare "key" becomes
// a tag-existence filter; empty input clears filters. The cursor is always
// dropped so filtered listings start from the first page.
func (m SourceBrowserModel) applyTagFilter(input string) paging.FilterOptions {
	opts := paging.FilterOptions{Limit: sourcePageSize}
	input = strings.TrimSpace(input)
	if input == "" {
		return opts
	}
	if key, value, found := strings.Cut(input, "="); found {
		opts.Tags = map[string]string{strings.TrimSpace(key): strings.TrimSpace(value)}
	} else {
		opts.TagExists = map[string]bool{input: true}
	}
	return opts
}

func (m *SourceBrowserModel) updateRows() {
	rows := make([]table.Row, 0, len(m.sources))
	cols := sourceColumns(m.Layout.TableWidth)
	for _, s := range m.sources {
		label := s.Label
		if label == "" {
			label = s.Description
		}
		rows = append(rows, table.Row{
			s.ID,
			truncate(label, cols[1].Width),
			truncate(s.Format, cols[2].Width),
			truncate(s.Updated, cols[3].Width),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View implements tea.Model
func (m SourceBrowserModel) View() string {
	if m.Quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(RenderTitle(m.Layout, "Sources"))

	if m.inputMode {
		content.WriteString(" Filter: ")
		content.WriteString(m.textInput.View())
	} else if m.loading {
		content.WriteString(m.spinner.View())
		content.WriteString(" ")
		content.WriteString(HintStyle.Render("Loading sources..."))
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

	helpText := "Enter: flows | /: filter | n/p/f/l: page | r: reload | Esc: back"
	if m.inputMode {
		helpText = "Enter: apply filter | Esc: cancel"
	}

	return RenderFrame(m.Layout, content.String(), helpText)
}

// RunSourceBrowser runs the source browser, descending into the flow
// browser when a source is opened, until the user backs out to the menu.
func RunSourceBrowser(client *api.Client, logger *log.Logger) error {
	for {
		model := NewSourceBrowserModel(client, logger)
		finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("source browser error: %w", err)
		}

		final := finalModel.(SourceBrowserModel)
		if final.selectedSource == nil {
			return nil
		}
		if err := RunFlowBrowser(client, logger, final.selectedSource); err != nil {
			return err
		}
	}
}
