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
)

// WebhookManagerModel is the TUI model for webhook registrations
type WebhookManagerModel struct {
	PageState
	client  *api.Client
	logger  *log.Logger
	table   table.Model
	spinner spinner.Model

	hooks   []models.Webhook
	loading bool
	err     error

	addRequested bool
	deleteURL    string // set when the user asks to delete the selected hook
}

// webhooksLoadedMsg is sent when the registration list is ready
type webhooksLoadedMsg struct {
	hooks []models.Webhook
	err   error
}

// NewWebhookManagerModel creates the webhook management page
func NewWebhookManagerModel(client *api.Client, logger *log.Logger) WebhookManagerModel {
	layout := DefaultLayout()

	t := table.New(
		table.WithColumns(webhookColumns(layout.TableWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)

	return WebhookManagerModel{
		PageState: NewPageState(layout),
		client:    client,
		logger:    logger,
		table:     t,
		spinner:   NewAppSpinner(),
		loading:   true,
	}
}

func webhookColumns(tableWidth int) []table.Column {
	domainW, eventsW := 24, 34
	urlW := tableWidth - domainW - eventsW - 4
	if urlW < 20 {
		urlW = 20
	}
	return []table.Column{
		{Title: "URL", Width: urlW},
		{Title: "Domain", Width: domainW},
		{Title: "Events", Width: eventsW},
	}
}

func (m WebhookManagerModel) fetchWebhooks() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		hooks, err := client.ListWebhooks()
		return webhooksLoadedMsg{hooks: hooks, err: err}
	}
}

// Init implements tea.Model
func (m WebhookManagerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchWebhooks())
}

// Update implements tea.Model
func (m WebhookManagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearExpiredStatus()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			m.table.SetHeight(m.Layout.TableHeight)
			m.table.SetColumns(webhookColumns(m.Layout.TableWidth))
			m.updateRows()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case webhooksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.hooks = msg.hooks
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
			return m, m.fetchWebhooks()

		case "up", "k":
			m.table.MoveUp(1)
			return m, nil

		case "down", "j":
			m.table.MoveDown(1)
			return m, nil

		case "a":
			// Registration uses a huh form, which needs the terminal;
			// quit this program and let RunWebhookManager drive the form.
			m.addRequested = true
			m.Quitting = true
			return m, tea.Quit

		case "d", "delete":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.hooks) {
				m.deleteURL = m.hooks[cursor].URL
				m.Quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *WebhookManagerModel) updateRows() {
	rows := make([]table.Row, 0, len(m.hooks))
	cols := webhookColumns(m.Layout.TableWidth)
	for _, h := range m.hooks {
		domain, err := api.WebhookRootDomain(h.URL)
		if err != nil {
			domain = "?"
		}
		rows = append(rows, table.Row{
			truncate(h.URL, cols[0].Width),
			truncate(domain, cols[1].Width),
			truncate(strings.Join(h.Events, ", "), cols[2].Width),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View implements tea.Model
func (m WebhookManagerModel) View() string {
	if m.Quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(RenderTitle(m.Layout, "Webhooks"))

	if m.loading {
		content.WriteString(m.spinner.View())
		content.WriteString(" ")
		content.WriteString(HintStyle.Render("Loading registrations..."))
	} else if m.err != nil {
		content.WriteString(ErrorStyle.Render(fmt.Sprintf(" Error: %v", m.err)))
	} else if len(m.hooks) == 0 {
		content.WriteString(HintStyle.Render(" No webhooks registered. Press a to add one."))
	} else {
		content.WriteString(m.table.View())
		if status := m.RenderStatus(); status != "" {
			content.WriteString("\n ")
			content.WriteString(status)
		}
	}

	helpText := "a: add | d: delete | r: reload | Esc: back"
	return RenderFrame(m.Layout, content.String(), helpText)
}

// RunWebhookManager runs the webhook page, handling the add/delete flows
// that need the terminal outside the table program.
func RunWebhookManager(client *api.Client, logger *log.Logger) error {
	for {
		model := NewWebhookManagerModel(client, logger)
		finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("webhook manager error: %w", err)
		}

		final := finalModel.(WebhookManagerModel)
		switch {
		case final.addRequested:
			hook, cancelled, err := PromptForWebhook()
			if err != nil {
				return err
			}
			if cancelled {
				continue
			}
			if err := client.RegisterWebhook(*hook); err != nil {
				PrintError(fmt.Sprintf("Registration failed: %v", err))
			} else {
				PrintSuccess(fmt.Sprintf("Registered %s", hook.URL))
			}

		case final.deleteURL != "":
			confirmed, err := ConfirmDelete(final.deleteURL)
			if err != nil {
				return err
			}
			if !confirmed {
				continue
			}
			if err := client.DeleteWebhook(final.deleteURL); err != nil {
				PrintError(fmt.Sprintf("Delete failed: %v", err))
			} else {
				PrintSuccess(fmt.Sprintf("Deleted %s", final.deleteURL))
			}

		default:
			return nil
		}
	}
}
