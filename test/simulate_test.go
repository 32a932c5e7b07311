package test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	msgs []tea.Msg
}

func (r *recorder) Update(msg tea.Msg) tea.Cmd {
	r.msgs = append(r.msgs, msg)
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "a" {
		return Click(1, 2)
	}
	return nil
}

func TestSimulateModel_FollowsReturnedCommands(t *testing.T) {
	r := &recorder{}
	var observed int
	SimulateModel(r, tea.Batch(Resize(10, 5), Type("ab")), func(tea.Msg) { observed++ })

	assert.Equal(t, []tea.Msg{
		tea.WindowSizeMsg{Width: 10, Height: 5},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}},
		tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
	}, r.msgs)
	assert.Equal(t, 4, observed)
}

func TestTrimFrame(t *testing.T) {
	assert.Equal(t, "  a\n b", TrimFrame("  a  \r\n b \n  \n"))
	assert.Equal(t, "", TrimFrame("   \n "))
}
