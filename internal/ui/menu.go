package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avtools/tamscout/internal/models"
)

// Menu actions returned by RunMainMenu
const (
	MenuSources  = "sources"
	MenuFlows    = "flows"
	MenuWebhooks = "webhooks"
	MenuEvents   = "events"
	MenuQuit     = "quit"
)

type menuEntry struct {
	label  string
	action string
}

var menuEntries = []menuEntry{
	{"Browse Sources", MenuSources},
	{"Browse All Flows", MenuFlows},
	{"Manage Webhooks", MenuWebhooks},
	{"Event History", MenuEvents},
	{"Quit", MenuQuit},
}

// menuModel is the main menu selector
type menuModel struct {
	PageState
	info   *models.ServiceInfo
	store  string
	cursor int
	choice string
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UpdateLayout(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.choice = MenuQuit
			m.Quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(menuEntries)-1 {
				m.cursor++
			}
			return m, nil

		case "enter":
			m.choice = menuEntries[m.cursor].action
			m.Quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m menuModel) View() string {
	if m.Quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(RenderTitle(m.Layout, "tamscout"))

	if m.info != nil && m.info.Name != "" {
		content.WriteString(AccentStyle.Render(fmt.Sprintf(" %s", m.info.Name)))
		if m.info.ServiceVersion != "" {
			content.WriteString(HintStyle.Render(fmt.Sprintf(" (%s)", m.info.ServiceVersion)))
		}
		content.WriteString("\n")
	}
	content.WriteString(HintStyle.Render(fmt.Sprintf(" %s", m.store)))
	content.WriteString("\n\n")

	for i, entry := range menuEntries {
		if i == m.cursor {
			content.WriteString(SelectedStyle.Render(" ▸ " + entry.label + " "))
		} else {
			content.WriteString(NormalStyle.Render("   " + entry.label))
		}
		content.WriteString("\n")
	}

	return RenderFrame(m.Layout, content.String(), "↑/↓: move | Enter: select | q: quit")
}

// RunMainMenu shows the main menu and returns the chosen action.
func RunMainMenu(info *models.ServiceInfo, storeURL string) (string, error) {
	model := menuModel{
		PageState: NewPageState(DefaultLayout()),
		info:      info,
		store:     storeURL,
	}
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("menu error: %w", err)
	}
	return finalModel.(menuModel).choice, nil
}
