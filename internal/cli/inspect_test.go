package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/erdgraph/pkg/graph"
)

func inspectLayout() graph.Layout {
	return graph.Layout{
		Title:   "shop",
		ViewBox: graph.ViewBox{Width: 780, Height: 230},
		Records: []graph.Record{
			{ID: 1, Label: "users", X: 50, Y: 80, Width: 300, Height: 70,
				Anchors: make([]graph.Anchor, 4),
				Fields: []graph.Field{
					{ID: 2, Name: "id", Anchors: make([]graph.Anchor, 3)},
					{ID: 3, Name: "email", Anchors: make([]graph.Anchor, 3)},
				}},
			{ID: 4, Label: "orders", X: 430, Y: 80, Width: 300, Height: 35,
				Anchors: make([]graph.Anchor, 4),
				Fields:  []graph.Field{{ID: 5, Name: "user_id", Anchors: make([]graph.Anchor, 4)}}},
		},
		Edges: []graph.Edge{
			{From: 5, To: 2, Start: graph.AnchorRef{Node: 5, Index: 3}, End: graph.AnchorRef{Node: 2, Index: 1}, Length: 87.3},
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m InspectModel, keys ...string) InspectModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(InspectModel)
	}
	return m
}

func TestInspectRecordsView(t *testing.T) {
	view := NewInspectModel(inspectLayout()).View()

	for _, want := range []string{"shop", "780 × 230", "Tables (2)", "Relations (1)", "users", "orders", "50, 80", "300 × 70", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestInspectAnchorCount(t *testing.T) {
	_, rows := NewInspectModel(inspectLayout()).recordRows()
	if rows[0][5] != "10" {
		t.Errorf("users anchors = %s, want 10", rows[0][5])
	}
	if rows[1][5] != "8" {
		t.Errorf("orders anchors = %s, want 8", rows[1][5])
	}
}

func TestInspectNavigation(t *testing.T) {
	m := NewInspectModel(inspectLayout())

	m = update(m, "down", "down", "down")
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want clamp at 1", m.Cursor)
	}
	m = update(m, "k")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}

	m = update(m, "j", "tab")
	if m.Tab != tabEdges || m.Cursor != 0 {
		t.Errorf("tab = %d cursor = %d, want edges tab at 0", m.Tab, m.Cursor)
	}
}

func TestInspectEdgesView(t *testing.T) {
	m := update(NewInspectModel(inspectLayout()), "tab")
	view := m.View()

	for _, want := range []string{"orders.user_id → users.id", "orders.user_id#3", "users.id#1", "87.3"} {
		if !strings.Contains(view, want) {
			t.Errorf("edges view missing %q:\n%s", want, view)
		}
	}
}

func TestInspectQuit(t *testing.T) {
	_, cmd := NewInspectModel(inspectLayout()).Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestInspectEmptyLayout(t *testing.T) {
	m := NewInspectModel(graph.Layout{})
	m = update(m, "down")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 on empty layout", m.Cursor)
	}
	if !strings.Contains(m.View(), "(none)") {
		t.Error("empty layout should say (none)")
	}
}
