package problem

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/item"
)

// answer types s into the prompt and presses enter.
func answer(t *testing.T, m promptModel, s string) (promptModel, tea.Cmd) {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm, ok := next.(promptModel)
	require.True(t, ok)

	return pm, cmd
}

func TestPrompt_FullConversation(t *testing.T) {
	m := newPromptModel(item.DefaultLimits())
	assert.Contains(t, m.View(), "Enter number of items (max 15):")

	m, cmd := answer(t, m, "2")
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Enter capacity of warehouse (max 100):")

	m, _ = answer(t, m, "5")
	assert.Contains(t, m.View(), "Enter weight and value of item 1:")

	m, _ = answer(t, m, "2 3")
	m, cmd = answer(t, m, " 3   4 ")
	require.NotNil(t, cmd, "last answer quits the program")
	assert.Empty(t, m.View())

	p, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, 5, p.Capacity)
	assert.Equal(t, []item.Item{
		{ID: 1, Weight: 2, Value: 3},
		{ID: 2, Weight: 3, Value: 4},
	}, p.Items)
}

func TestPrompt_ZeroItemsSkipsItemStage(t *testing.T) {
	m := newPromptModel(item.DefaultLimits())
	m, _ = answer(t, m, "0")
	m, cmd := answer(t, m, "10")
	require.NotNil(t, cmd)

	p, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, 10, p.Capacity)
	assert.Empty(t, p.Items)
}

func TestPrompt_InvalidAnswersAbort(t *testing.T) {
	cases := []struct {
		name    string
		answers []string
		want    error
	}{
		{"count not a number", []string{"many"}, item.ErrInvalidCount},
		{"count over limit", []string{"16"}, item.ErrInvalidCount},
		{"negative count", []string{"-1"}, item.ErrInvalidCount},
		{"capacity over limit", []string{"1", "101"}, item.ErrInvalidCapacity},
		{"capacity not a number", []string{"1", "lots"}, item.ErrInvalidCapacity},
		{"zero weight", []string{"1", "10", "0 5"}, item.ErrNonPositiveWeight},
		{"negative value", []string{"1", "10", "3 -5"}, item.ErrNegativeValue},
		{"one field", []string{"1", "10", "3"}, item.ErrInvalidItem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newPromptModel(item.DefaultLimits())
			var cmd tea.Cmd
			for _, a := range tc.answers {
				m, cmd = answer(t, m, a)
			}
			require.NotNil(t, cmd, "an invalid answer quits")
			_, err := m.result()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPrompt_EscAborts(t *testing.T) {
	m := newPromptModel(item.DefaultLimits())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, err := next.(promptModel).result()
	assert.ErrorIs(t, err, ErrAborted)
}

func TestPrompt_IncompleteIsAborted(t *testing.T) {
	m := newPromptModel(item.DefaultLimits())
	m, _ = answer(t, m, "3")

	_, err := m.result()
	assert.ErrorIs(t, err, ErrAborted)
}
