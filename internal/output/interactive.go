package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

func init() {
	// Disable mouse support to allow text selection in terminal.
	_ = os.Setenv("BUBBLETEA_DISABLE_MOUSE", "1")
}

// Lines below the history table: prompt, preview and help.
const promptLines = 4

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type promptModel struct {
	input   textinput.Model
	history table.Model
	resolve Resolver
	now     func() time.Time
	format  string
	width   int
	height  int
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.commit()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reflow()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commit moves the current expression into the history table.
func (m *promptModel) commit() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return
	}

	row := table.Row{value, "", ""}
	if t, err := m.resolve(value); err != nil {
		row[1] = "error: " + err.Error()
	} else {
		row[1] = FormatTime(t, m.format)
		row[2] = FormatDuration(t.Sub(m.now()))
	}

	m.history.SetRows(append(m.history.Rows(), row))
	m.history.GotoBottom()
	m.input.Reset()
}

func (m promptModel) preview() string {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return ""
	}

	t, err := m.resolve(value)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return previewStyle.Render(fmt.Sprintf("%s (%s)", FormatTime(t, m.format), FormatDuration(t.Sub(m.now()))))
}

func (m *promptModel) reflow() {
	m.history.SetColumns(buildColumns(m.width))
	m.history.SetHeight(calcTableHeight(m.height))
	m.input.Width = max(m.width-len(m.input.Prompt)-1, 10)
}

func (m promptModel) View() string {
	return baseStyle.Render(m.history.View()) + "\n" +
		m.input.View() + "\n" +
		"  " + m.preview() + "\n" +
		helpStyle.Render("  enter to keep, ↑/↓ to scroll, esc to quit") + "\n"
}

func newPromptModel(resolve Resolver, now func() time.Time, format string, termWidth, termHeight int) promptModel {
	ti := textinput.New()
	ti.Placeholder = "next friday 9am"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	t := table.New(
		table.WithColumns(buildColumns(termWidth)),
		table.WithFocused(true),
		table.WithHeight(calcTableHeight(termHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := promptModel{
		input:   ti,
		history: t,
		resolve: resolve,
		now:     now,
		format:  format,
		width:   termWidth,
		height:  termHeight,
	}
	m.reflow()

	return m
}

// RunInteractive shows a prompt that resolves the expression while it is typed.
func RunInteractive(resolve Resolver, now func() time.Time, format string) error {
	termWidth := 100
	termHeight := 30
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		termWidth = w
		termHeight = h
	}

	p := tea.NewProgram(newPromptModel(resolve, now, format, termWidth, termHeight))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running prompt: %w", err)
	}

	return nil
}

func calcTableHeight(termHeight int) int {
	available := termHeight - promptLines - baseStyle.GetVerticalFrameSize()
	if available < 5 {
		return 5
	}
	return available
}

const (
	colWidthResult = 25
	colWidthUntil  = 12
)

func buildColumns(termWidth int) []table.Column {
	var (
		fixedWidth   = colWidthResult + colWidthUntil
		paddingWidth = 3 * 2
	)

	inputWidth := termWidth - baseStyle.GetHorizontalFrameSize() - paddingWidth - fixedWidth
	inputWidth = max(inputWidth, 20)

	return []table.Column{
		{Title: "Input", Width: inputWidth},
		{Title: "Result", Width: colWidthResult},
		{Title: "From now", Width: colWidthUntil},
	}
}
