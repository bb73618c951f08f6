package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockfall/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestMapKeyBindings(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a moves left", runeKey('a'), core.ActionLeft},
		{"left arrow moves left", tea.KeyMsg(tea.Key{Type: tea.KeyLeft}), core.ActionLeft},
		{"d moves right", runeKey('d'), core.ActionRight},
		{"s soft drops", runeKey('s'), core.ActionSoftDrop},
		{"z rotates CCW", runeKey('z'), core.ActionRotateCCW},
		{"x rotates CW", runeKey('x'), core.ActionRotateCW},
		{"c holds", runeKey('c'), core.ActionHold},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"esc pauses", tea.KeyMsg(tea.Key{Type: tea.KeyEsc}), core.ActionPause},
		{"b goes back", runeKey('b'), core.ActionBack},
		{"r restarts", runeKey('r'), core.ActionRestart},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		action, isQuit := km.MapKey(tt.msg)
		if action != tt.want {
			t.Errorf("%s: action = %v, want %v", tt.name, action, tt.want)
		}
		if isQuit {
			t.Errorf("%s: unexpectedly reported quit", tt.name)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{
		runeKey('q'),
		tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}),
	} {
		action, isQuit := km.MapKey(msg)
		if !isQuit || action != core.ActionQuit {
			t.Errorf("%q: action = %v, isQuit = %v, want quit", msg.String(), action, isQuit)
		}
	}
}

func TestMapKeyToMenuActionEscGoesBack(t *testing.T) {
	km := NewKeyMapper()

	// In menus esc backs out even though it pauses during play.
	if got := km.MapKeyToMenuAction(tea.KeyMsg(tea.Key{Type: tea.KeyEsc})); got != MenuActionBack {
		t.Errorf("esc menu action = %v, want back", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg(tea.Key{Type: tea.KeyTab})); got != MenuActionScoreboard {
		t.Errorf("tab menu action = %v, want scoreboard", got)
	}
}
