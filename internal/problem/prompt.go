package problem

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/knapsack/compare"
	"github.com/katalvlaran/knapsack/item"
)

type stage int

const (
	stageCount stage = iota
	stageCapacity
	stageItems
	stageDone
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
)

// promptModel asks for the item count, the capacity, then "weight value" per
// item. The first invalid answer ends the program with an error; nothing is
// re-asked.
type promptModel struct {
	input textinput.Model
	stage stage
	lim   item.Limits

	count   int
	problem compare.Problem
	err     error
}

func newPromptModel(lim item.Limits) promptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 32
	ti.Focus()

	return promptModel{input: ti, lim: lim}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrAborted

			return m, tea.Quit
		case tea.KeyEnter, tea.KeyCtrlJ:
			m = m.submit(strings.TrimSpace(m.input.Value()))
			m.input.Reset()
			if m.err != nil || m.stage == stageDone {
				return m, tea.Quit
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// submit consumes one answer for the current stage.
func (m promptModel) submit(answer string) promptModel {
	switch m.stage {
	case stageCount:
		n, err := strconv.Atoi(answer)
		if err != nil {
			m.err = fmt.Errorf("%w: %q", item.ErrInvalidCount, answer)

			return m
		}
		if m.err = item.ValidateCount(n, m.lim); m.err != nil {
			return m
		}
		m.count = n
		m.problem.Items = make([]item.Item, 0, n)
		m.stage = stageCapacity

	case stageCapacity:
		c, err := strconv.Atoi(answer)
		if err != nil {
			m.err = fmt.Errorf("%w: %q", item.ErrInvalidCapacity, answer)

			return m
		}
		if m.err = item.ValidateCapacity(c, m.lim); m.err != nil {
			return m
		}
		m.problem.Capacity = c
		m.stage = stageItems
		if m.count == 0 {
			m.stage = stageDone
		}

	case stageItems:
		id := len(m.problem.Items) + 1
		it, err := parseItem(id, answer)
		if err != nil {
			m.err = fmt.Errorf("%w %d: %w", item.ErrInvalidItem, id, err)

			return m
		}
		m.problem.Items = append(m.problem.Items, it)
		if len(m.problem.Items) == m.count {
			m.stage = stageDone
		}
	}

	return m
}

// parseItem reads "weight value".
func parseItem(id int, answer string) (item.Item, error) {
	fields := strings.Fields(answer)
	if len(fields) != 2 {
		return item.Item{}, fmt.Errorf("want \"weight value\", got %q", answer)
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return item.Item{}, fmt.Errorf("weight: %w", err)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return item.Item{}, fmt.Errorf("value: %w", err)
	}

	return item.New(id, w, v)
}

func (m promptModel) question() string {
	switch m.stage {
	case stageCount:
		return fmt.Sprintf("Enter number of items (max %d):", m.lim.MaxItems)
	case stageCapacity:
		return fmt.Sprintf("Enter capacity of warehouse (max %d):", m.lim.MaxCapacity)
	case stageItems:
		return fmt.Sprintf("Enter weight and value of item %d:", len(m.problem.Items)+1)
	default:
		return ""
	}
}

func (m promptModel) View() string {
	if m.stage == stageDone || m.err != nil {
		return ""
	}
	var s strings.Builder
	s.WriteString(questionStyle.Render(m.question()))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(hintStyle.Render("(enter to confirm, esc to quit)"))
	s.WriteString("\n")

	return s.String()
}

// result returns the collected problem, or the error that stopped the prompt.
func (m promptModel) result() (compare.Problem, error) {
	if m.err != nil {
		return compare.Problem{}, m.err
	}
	if m.stage != stageDone {
		return compare.Problem{}, ErrAborted
	}

	return m.problem, nil
}

// Prompt runs the interactive console acquisition on in/out.
func Prompt(in io.Reader, out io.Writer, lim item.Limits) (compare.Problem, error) {
	p := tea.NewProgram(newPromptModel(lim), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return compare.Problem{}, fmt.Errorf("problem: prompt: %w", err)
	}
	m, ok := final.(promptModel)
	if !ok {
		return compare.Problem{}, ErrAborted
	}

	return m.result()
}
