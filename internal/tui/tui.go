// Package tui is the interactive mode: a chunk list with a live diff
// preview, apply/undo on keypress, and copy-diff to the clipboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/patchpick/patchpick/internal/patch"
	"github.com/patchpick/patchpick/internal/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	appliedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("136"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	previewBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))

	diffAddStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	diffDelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	diffHunkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Model is the bubbletea model for the interactive session.
type Model struct {
	sess     *session.Session
	cursor   int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	status   string
}

// Run starts the interactive UI over the session and blocks until the
// operator quits.
func Run(sess *session.Session) error {
	m := Model{sess: sess}
	m.status = fmt.Sprintf("Detected %d chunk(s)", len(sess.Chunks()))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := len(m.sess.Chunks()) + 2
		vpHeight := m.height - listHeight - 4
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(m.width-2, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width - 2
			m.viewport.Height = vpHeight
		}
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}

		case "down", "j":
			if m.cursor < len(m.sess.Chunks())-1 {
				m.cursor++
				m.refreshPreview()
			}

		case "enter", "a":
			m.applyCurrent()

		case "u":
			if m.sess.Undo() {
				m.status = "Undid last apply"
				m.refreshPreview()
			} else {
				m.status = "Nothing to undo"
			}

		case "c":
			m.copyDiff()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) applyCurrent() {
	if len(m.sess.Chunks()) == 0 {
		return
	}
	_, err := m.sess.Apply(m.cursor)
	switch {
	case err == nil:
		_, note := m.sess.State(m.cursor)
		m.status = fmt.Sprintf("Chunk #%d %s", m.cursor+1, note)
	case patch.IsSkip(err):
		m.status = fmt.Sprintf("Chunk #%d already applied", m.cursor+1)
	default:
		m.status = fmt.Sprintf("Chunk #%d: %v", m.cursor+1, err)
	}
	m.refreshPreview()
}

func (m *Model) copyDiff() {
	diff, err := m.sess.FullDiff()
	if err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	if diff == "" {
		m.status = "No changes to copy"
		return
	}
	if err := clipboard.WriteAll(diff); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = "Diff copied to clipboard"
}

// refreshPreview recomputes the speculative diff for the selected chunk.
// Preview is a pure read over the session, so running it on every cursor
// move is safe.
func (m *Model) refreshPreview() {
	if !m.ready || len(m.sess.Chunks()) == 0 {
		return
	}
	preview, err := m.sess.Preview(m.cursor)
	switch {
	case err == nil:
		m.viewport.SetContent(colorizeDiff(preview))
	case patch.IsSkip(err):
		m.viewport.SetContent(skippedStyle.Render("This chunk's effect is already present in the buffer."))
	default:
		m.viewport.SetContent(failedStyle.Render(fmt.Sprintf("Cannot preview: %v", err)))
	}
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("patchpick: %s", m.sess.Path())))
	b.WriteString("\n\n")

	for i, c := range m.sess.Chunks() {
		state, _ := m.sess.State(i)
		line := fmt.Sprintf("%s Chunk #%-3d %-11s %s", stateGlyph(state), i+1, c.Kind.String(), chunkHint(c))
		style := stateStyle(state)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = style.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(previewBorder.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move · enter apply · u undo · c copy diff · q quit"))
	return b.String()
}

func stateGlyph(s session.State) string {
	switch s {
	case session.Applied:
		return "✓"
	case session.Skipped:
		return "–"
	case session.Failed:
		return "✗"
	default:
		return "·"
	}
}

func stateStyle(s session.State) lipgloss.Style {
	switch s {
	case session.Applied:
		return appliedStyle
	case session.Skipped:
		return skippedStyle
	case session.Failed:
		return failedStyle
	default:
		return pendingStyle
	}
}

// chunkHint is the most recognizable line of the chunk, for the list view.
func chunkHint(c patch.Chunk) string {
	var line string
	switch {
	case len(c.Context) > 0:
		line = c.Context[len(c.Context)-1]
	case len(c.Removed) > 0:
		line = c.Removed[0]
	case len(c.Added) > 0:
		line = c.Added[0]
	}
	line = strings.TrimSpace(line)
	if len(line) > 48 {
		line = line[:45] + "..."
	}
	return line
}

// colorizeDiff styles unified-diff lines for the preview pane.
func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "@@"):
			lines[i] = diffHunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = diffAddStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = diffDelStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
