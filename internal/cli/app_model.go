package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack, a breadcrumb header, and a status footer.
type appModel struct {
	state     *SharedState
	viewStack []View
	status    string
	statusErr bool
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}

	// Start with the dashboard as the home view.
	m.viewStack = []View{newDashboardView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.status = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views reload
		// data after mutations made in views above them (e.g. wizard forms).
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case statusLineMsg:
		m.status = msg.text
		m.statusErr = msg.isErr
		return m, nil

	case wizardDoneMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.next

	case wizardCancelMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits. Other global keys stay out of form views so
	// typed text is never swallowed.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	inForm := m.activeView() != nil && m.activeView().ID() == ViewForm

	if !inForm {
		switch msg.String() {
		case "q":
			if len(m.viewStack) == 1 {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			if len(m.viewStack) > 1 {
				m.status = ""
				popped := m.activeView()
				m.viewStack = m.viewStack[:len(m.viewStack)-1]
				if popped.ID() == ViewTaskPanel {
					m.state.ClearActiveProject()
				}
				return m, nil
			}
		}
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	v := m.activeView()
	if v == nil {
		return ""
	}

	var b strings.Builder

	// Header: breadcrumb of view titles.
	crumbs := make([]string, 0, len(m.viewStack))
	for _, sv := range m.viewStack {
		crumbs = append(crumbs, sv.Title())
	}
	header := formatter.StyleHeader.Render("sitedesk") + formatter.Dim(" › "+strings.Join(crumbs, " › "))
	b.WriteString(header + "\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", max(m.state.Width, lipgloss.Width(header)))) + "\n")

	b.WriteString(v.View())

	// Footer: transient status + key hints.
	b.WriteString("\n")
	if m.status != "" {
		style := formatter.StyleGreen
		if m.statusErr {
			style = formatter.StyleRed
		}
		b.WriteString(style.Render(m.status) + "\n")
	}
	b.WriteString(renderShortHelp(v.ShortHelp()))

	return b.String()
}

func renderShortHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.StyleFg.Render(h.Key)+formatter.Dim(" "+h.Desc))
	}
	return formatter.Dim("  ") + strings.Join(parts, formatter.Dim(" • "))
}
