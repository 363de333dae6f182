package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cargoscope/pkg/workspace"
)

// projectListModel is the bubbletea model for interactive project
// selection when `tree` is invoked without a root argument.
type projectListModel struct {
	Projects []*workspace.Project
	Cursor   int
	Selected *workspace.Project
	Height   int
	Offset   int
}

func newProjectListModel(projects []*workspace.Project) projectListModel {
	return projectListModel{
		Projects: projects,
		Height:   15,
	}
}

func (m projectListModel) Init() tea.Cmd {
	return nil
}

func (m projectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Projects)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Projects[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m projectListModel) View() string {
	var b strings.Builder

	b.WriteString(pickerSelectedStyle.Render("Select Root Crate"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Projects) {
		end = len(m.Projects)
	}

	for i := m.Offset; i < end; i++ {
		p := m.Projects[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := p.Name
		if name == "" {
			name = p.Dir
		}
		line := fmt.Sprintf("%s%-30s  %s", cursor, name,
			styleDim.Render(fmt.Sprintf("%d deps, %d dependents", len(p.Deps), len(p.Dependents))))

		if i == m.Cursor {
			b.WriteString(pickerSelectedStyle.Render(line))
		} else {
			b.WriteString(pickerNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Projects))))

	return b.String()
}

// pickProject runs the interactive picker and returns the chosen project,
// or nil when the user quits without selecting.
func pickProject(projects []*workspace.Project) (*workspace.Project, error) {
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects to select from")
	}

	prog := tea.NewProgram(newProjectListModel(projects))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("interactive selection failed: %w", err)
	}

	model, ok := final.(projectListModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return model.Selected, nil
}
