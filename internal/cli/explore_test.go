package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/spacegraph/pkg/graph"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m ExplorerModel, keys ...string) ExplorerModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(ExplorerModel)
	}
	return m
}

func TestExplorerModelNavigation(t *testing.T) {
	g := graph.New(4)

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"starts at zero", nil, 0},
		{"down", []string{"down", "j"}, 2},
		{"stops at last", []string{"down", "down", "down", "down", "down"}, 3},
		{"stops at first", []string{"up", "k"}, 0},
		{"last and first", []string{"G", "k", "g", "j"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewExplorerModel(g), tt.keys...)
			if m.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.want)
			}
		})
	}
}

func TestExplorerModelScroll(t *testing.T) {
	m := NewExplorerModel(graph.New(10))
	m.Height = 3

	m = press(m, "G")
	if m.Offset != 7 {
		t.Errorf("Offset after G = %d, want 7", m.Offset)
	}
	m = press(m, "g")
	if m.Offset != 0 {
		t.Errorf("Offset after g = %d, want 0", m.Offset)
	}
}

func TestExplorerModelQuit(t *testing.T) {
	_, cmd := NewExplorerModel(graph.New(1)).Update(key("q"))
	if cmd == nil {
		t.Fatal("Update(q) returned nil command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(q) did not quit")
	}
}

func TestExplorerModelWindowSize(t *testing.T) {
	next, _ := NewExplorerModel(graph.New(1)).Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	if got := next.(ExplorerModel).Height; got != 5 {
		t.Errorf("Height = %d, want 5", got)
	}
}

func TestExplorerModelView(t *testing.T) {
	g := graph.New(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(2, 2)

	view := NewExplorerModel(g).View()
	for _, want := range []string{"Graph Explorer", "3 vertices", "3 edges", "1 self-loops", "2 1", iconLoop, "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestExplorerModelViewEmpty(t *testing.T) {
	m := press(NewExplorerModel(graph.Empty()), "down", "G")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	if view := m.View(); !strings.Contains(view, "no vertices") {
		t.Errorf("View() = %q, want empty notice", view)
	}
}
