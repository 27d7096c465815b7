package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/polyorder/pkg/cache"
	"github.com/matzehuels/polyorder/pkg/circuit"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

func solvedBuiltin(t *testing.T, name string) *pipeline.Result {
	t.Helper()
	c, err := circuit.Builtin(name)
	if err != nil {
		t.Fatal(err)
	}
	res, err := pipeline.NewRunner(cache.NewNullCache(), nil, nil).Solve(context.Background(), c, pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestOrderingListNavigation(t *testing.T) {
	res := solvedBuiltin(t, "complex")
	m := NewOrderingListModel(res)

	got := press(m, "down", "down", "up").(OrderingListModel)
	if got.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", got.Cursor)
	}

	got = press(got, "up", "up", "up").(OrderingListModel)
	if got.Cursor != 0 {
		t.Errorf("Cursor = %d, want clamp at 0", got.Cursor)
	}

	got = press(got, "j", "j", "j", "j", "j", "j").(OrderingListModel)
	if got.Cursor != len(res.Orderings)-1 {
		t.Errorf("Cursor = %d, want clamp at %d", got.Cursor, len(res.Orderings)-1)
	}
}

func TestOrderingListWitnessPaging(t *testing.T) {
	res := solvedBuiltin(t, "simple")
	m := NewOrderingListModel(res)

	got := press(m, "l", "l", "l", "l").(OrderingListModel)
	if want := got.witnesses() - 1; got.Witness != want {
		t.Errorf("Witness = %d, want clamp at %d", got.Witness, want)
	}
	got = press(got, "down").(OrderingListModel)
	if got.Witness != 0 {
		t.Errorf("Witness = %d after moving, want reset to 0", got.Witness)
	}
}

func TestOrderingListSelect(t *testing.T) {
	res := solvedBuiltin(t, "simple")
	m := press(NewOrderingListModel(res), "down", "enter").(OrderingListModel)

	if m.Selected == nil {
		t.Fatal("enter did not select")
	}
	if !m.Selected.Sequence.Equal(res.Orderings[1].Sequence) {
		t.Errorf("Selected = %v, want %v", m.Selected.Sequence, res.Orderings[1].Sequence)
	}
}

func TestOrderingListView(t *testing.T) {
	res := solvedBuiltin(t, "simple")
	view := NewOrderingListModel(res).View()

	for _, want := range []string{"simple: 4 shared orderings", "A B C", "pull-up", "pull-down", "witness 1/", "[1/4]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestOrderingListWindowSize(t *testing.T) {
	m := NewOrderingListModel(solvedBuiltin(t, "simple"))
	got, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	if h := got.(OrderingListModel).Height; h != 3 {
		t.Errorf("Height = %d, want minimum 3", h)
	}
}
