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

const segmentPageSize = 50

// SegmentListModel is the TUI model for a flow's segment listing
type SegmentListModel struct {
	PageState
	client    *api.Client
	logger    *log.Logger
	flow      *models.Flow
	table     table.Model
	textInput textinput.Model
	spinner   spinner.Model

	segments []models.FlowSegment
	page     paging.Page
	opts     paging.FilterOptions

	loading   bool
	inputMode bool
	err       error
}

// segmentsLoadedMsg is sent when a page of segments is ready
type segmentsLoadedMsg struct {
	result *api.SegmentsPage
	err    error
}

// NewSegmentListModel creates the segment list page for a flow
func NewSegmentListModel(client *api.Client, logger *log.Logger, flow *models.Flow) SegmentListModel {
	ti := textinput.New()
	ti.Placeholder = "timerange, e.g. [0:0_30:0)"
	ti.CharLimit = 64

	layout := DefaultLayout()

	t := table.New(
		table.WithColumns(segmentColumns(layout.TableWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)

	return SegmentListModel{
		PageState: NewPageState(layout),
		client:    client,
		logger:    logger,
		flow:      flow,
		table:     t,
		textInput: ti,
		spinner:   NewAppSpinner(),
		opts:      paging.FilterOptions{Limit: segmentPageSize},
		loading:   true,
	}
}

func segmentColumns(tableWidth int) []table.Column {
	timerangeW, samplesW, urlsW := 34, 12, 8
	objectW := tableWidth - timerangeW - samplesW - urlsW - 6
	if objectW < 16 {
		objectW = 16
	}
	return []table.Column{
		{Title: "Object", Width: objectW},
		{Title: "Timerange", Width: timerangeW},
		{Title: "Samples", Width: samplesW},
		{Title: "URLs", Width: urlsW},
	}
}

func (m SegmentListModel) fetchSegments(opts paging.FilterOptions) tea.Cmd {
	client := m.client
	flowID := m.flow.ID
	return func() tea.Msg {
		result, err := client.ListFlowSegments(flowID, opts)
		return segmentsLoadedMsg{result: result, err: err}
	}
}

// Init implements tea.Model
func (m SegmentListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchSegments(m.opts))
}

// Update implements tea.Model
func (m SegmentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearExpiredStatus()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			m.table.SetHeight(m.Layout.TableHeight)
			m.table.SetColumns(segmentColumns(m.Layout.TableWidth))
			m.textInput.Width = m.Layout.InnerWidth - 16
			m.updateRows()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case segmentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.segments = msg.result.Segments
		m.page = msg.result.Page
		m.updateRows()
		return m, nil

	case tea.KeyMsg:
		if m.inputMode {
			switch msg.String() {
			case "enter":
				m.inputMode = false
				m.opts = paging.FilterOptions{
					Limit:     segmentPageSize,
					Timerange: strings.TrimSpace(m.textInput.Value()),
				}
				m.loading = true
				return m, m.fetchSegments(m.opts)
			case "esc":
				m.inputMode = false
				return m, nil
			default:
				var cmd tea.Cmd
				m.textInput, cmd = m.textInput.Update(msg)
				return m, cmd
			}
		}

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
			return m, m.fetchSegments(m.opts)

		case "up", "k":
			m.table.MoveUp(1)
			return m, nil

		case "down", "j":
			m.table.MoveDown(1)
			return m, nil

		case "s":
			// Save a QR code for the selected segment's first media URL
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.segments) {
				seg := m.segments[cursor]
				if len(seg.GetURLs) == 0 {
					m.SetError("segment has no media URLs")
					return m, nil
				}
				path, err := SaveSegmentQR(seg.GetURLs[0].URL, seg.ObjectID)
				if err != nil {
					m.SetError(fmt.Sprintf("QR export failed: %v", err))
				} else {
					m.SetStatus(fmt.Sprintf("QR saved to %s", path), statusDuration)
				}
			}
			return m, nil

		default:
			if cursor, ok := CursorForKey(m.page, key); ok {
				m.loading = true
				return m, m.fetchSegments(m.opts.WithPage(cursor))
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *SegmentListModel) updateRows() {
	rows := make([]table.Row, 0, len(m.segments))
	cols := segmentColumns(m.Layout.TableWidth)
	for _, s := range m.segments {
		samples := ""
		if s.SampleCount > 0 {
			samples = fmt.Sprintf("%d", s.SampleCount)
		}
		rows = append(rows, table.Row{
			truncate(s.ObjectID, cols[0].Width),
			truncate(s.Timerange, cols[1].Width),
			samples,
			fmt.Sprintf("%d", len(s.GetURLs)),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View implements tea.Model
func (m SegmentListModel) View() string {
	if m.Quitting {
		return ""
	}

	name := m.flow.Label
	if name == "" {
		name = m.flow.ID
	}

	var content strings.Builder
	content.WriteString(RenderTitle(m.Layout, fmt.Sprintf("Segments of %s", name)))

	if m.inputMode {
		content.WriteString(" Timerange: ")
		content.WriteString(m.textInput.View())
	} else if m.loading {
		content.WriteString(m.spinner.View())
		content.WriteString(" ")
		content.WriteString(HintStyle.Render("Loading segments..."))
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

	helpText := "/: timerange | s: save QR | n/p/f/l: page | r: reload | Esc: back"
	if m.inputMode {
		helpText = "Enter: apply timerange | Esc: cancel"
	}

	return RenderFrame(m.Layout, content.String(), helpText)
}

// RunSegmentList runs the segment list page for a flow.
func RunSegmentList(client *api.Client, logger *log.Logger, flow *models.Flow) error {
	model := NewSegmentListModel(client, logger, flow)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("segment list error: %w", err)
	}
	return nil
}
