package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cape-open/cobia/pmc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateList modelState = iota
	stateDetail
)

type interactiveModel struct {
	err          error
	registryFile string
	cleanup      func()
	all          []pmc.RegistrationDetails
	visible      []pmc.RegistrationDetails
	filter       textinput.Model
	filtering    bool
	selected     int
	state        modelState
}

func newInteractiveModel(registryFile string) *interactiveModel {
	filter := textinput.New()
	filter.Placeholder = "name"
	filter.Prompt = "filter: "
	filter.Width = 40
	return &interactiveModel{
		registryFile: registryFile,
		filter:       filter,
		state:        stateList,
	}
}

type loadedMsg struct {
	err     error
	cleanup func()
	details []pmc.RegistrationDetails
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	cleanup, err := startMiddleware(m.registryFile)
	if err != nil {
		return loadedMsg{err: err}
	}
	details, derr := pmc.Enumerate()
	if derr != nil {
		cleanup()
		return loadedMsg{err: fmt.Errorf("enumerate: %s", derr.Error())}
	}
	return loadedMsg{details: details, cleanup: cleanup}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()

		case "q":
			if !m.filtering {
				return m.quit()
			}

		case "up", "k":
			if m.state == stateList && !m.filtering && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && !m.filtering && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateList && !m.filtering {
				m.filtering = true
				m.filter.Focus()
				return m, nil
			}

		case "enter":
			switch {
			case m.filtering:
				m.filtering = false
				m.filter.Blur()
			case m.state == stateList && len(m.visible) > 0:
				m.state = stateDetail
			case m.state == stateDetail:
				m.state = stateList
			}

		case "esc":
			switch {
			case m.filtering:
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
			case m.state == stateDetail:
				m.state = stateList
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.all = msg.details
		m.cleanup = msg.cleanup
		m.applyFilter()
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) quit() (tea.Model, tea.Cmd) {
	if m.cleanup != nil {
		m.cleanup()
	}
	return m, tea.Quit
}

func (m *interactiveModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for _, d := range m.all {
		if needle == "" || strings.Contains(strings.ToLower(d.Name), needle) {
			m.visible = append(m.visible, d)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.all == nil {
		return "Loading registrations..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CAPE-OPEN Components"))
	b.WriteString(" ")
	b.WriteString(m.registryFile)
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		if m.filtering || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString("No components match.\n")
		}
		for i, d := range m.visible {
			line := nameStyle.Render(d.Name) + " " + fieldStyle.Render(d.ID)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter details • / filter • q quit"))

	case stateDetail:
		d := m.visible[m.selected]
		b.WriteString(nameStyle.Render(d.Name))
		b.WriteString("\n\n")
		writeField(&b, "uuid", d.ID)
		writeField(&b, "description", d.Description)
		writeField(&b, "version", d.ComponentVersion)
		writeField(&b, "CAPE-OPEN version", d.CapeVersion)
		writeField(&b, "prog id", d.ProgID)
		writeField(&b, "vendor", d.VendorURL)
		writeField(&b, "help", d.HelpURL)
		writeField(&b, "about", d.About)
		for _, loc := range d.Locations {
			writeField(&b, loc.ServiceType.String(), loc.Path)
		}
		if len(d.CategoryIDs) > 0 {
			writeField(&b, "categories", strings.Join(d.CategoryIDs, ", "))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))
	}

	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(fieldStyle.Render(name + ": "))
	b.WriteString(value)
	b.WriteString("\n")
}

func runInteractive(registryFile string) error {
	p := tea.NewProgram(newInteractiveModel(registryFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
