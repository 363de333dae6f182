package cli

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cargoscope/pkg/workspace"
)

func TestWorkspaceRoot(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args defaults to cwd", args: nil, want: "."},
		{name: "explicit path", args: []string{"ws"}, want: "ws"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := workspaceRoot(tt.args); got != tt.want {
				t.Errorf("workspaceRoot(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), "scanning")
	s.Start()
	time.Sleep(20 * time.Millisecond)

	s.Stop()
	s.Stop()
}

func TestSpinnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "scanning")
	s.Start()

	cancel()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func pickerProjects() []*workspace.Project {
	return []*workspace.Project{
		{Dir: "ws/app", Name: "app"},
		{Dir: "ws/lib", Name: "lib"},
		{Dir: "ws/util", Name: "util"},
	}
}

func TestProjectListNavigation(t *testing.T) {
	m := newProjectListModel(pickerProjects())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(projectListModel)
	if m.Cursor != 1 {
		t.Fatalf("Cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(projectListModel)
	if m.Cursor != 0 {
		t.Fatalf("Cursor after up = %d, want 0", m.Cursor)
	}

	// Cursor is clamped at the top.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(projectListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor clamped = %d, want 0", m.Cursor)
	}
}

func TestProjectListSelection(t *testing.T) {
	m := newProjectListModel(pickerProjects())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(projectListModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(projectListModel)

	if m.Selected == nil || m.Selected.Dir != "ws/lib" {
		t.Errorf("Selected = %+v, want ws/lib", m.Selected)
	}
}

func TestProjectListQuitWithoutSelection(t *testing.T) {
	m := newProjectListModel(pickerProjects())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(projectListModel)

	if m.Selected != nil {
		t.Error("quit should not select a project")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
}
