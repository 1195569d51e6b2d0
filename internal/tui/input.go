package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrInputCancelled is returned by ReadDiff when the operator aborts the
// paste screen without submitting.
var ErrInputCancelled = errors.New("diff input cancelled")

// inputModel is the paste screen shown when no diff was piped in or named
// on the command line.
type inputModel struct {
	ta      textarea.Model
	aborted bool
}

// ReadDiff opens a full-screen textarea for pasting unified-diff text and
// blocks until the operator submits with ctrl+d or aborts.
func ReadDiff() (string, error) {
	ta := textarea.New()
	ta.Placeholder = "Paste a unified diff here..."
	ta.CharLimit = 0
	ta.Focus()

	p := tea.NewProgram(inputModel{ta: ta}, tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return "", err
	}
	m := out.(inputModel)
	if m.aborted {
		return "", ErrInputCancelled
	}
	return m.ta.Value(), nil
}

func (m inputModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ta.SetWidth(msg.Width - 2)
		m.ta.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+d":
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("patchpick: paste diff"))
	b.WriteString("\n\n")
	b.WriteString(m.ta.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d line(s) · ctrl+d done · esc cancel", m.ta.LineCount())))
	return b.String()
}
