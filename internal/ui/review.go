package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FileDiff is one reviewable file: its path and the rendered diff.
type FileDiff struct {
	Path string
	Diff string
}

type reviewModel struct {
	files []FileDiff
	cur   int
	vp    viewport.Model
	ready bool
}

// NewReviewModel returns a pager over per-file diffs for `check --review`.
// Keys: n/p switch files, j/k and the usual viewport keys scroll, q quits.
func NewReviewModel(files []FileDiff) tea.Model {
	return &reviewModel{files: files}
}

func (m *reviewModel) Init() tea.Cmd { return nil }

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", "right", "tab":
			if m.cur < len(m.files)-1 {
				m.cur++
				m.vp.SetContent(m.files[m.cur].Diff)
				m.vp.GotoTop()
			}
			return m, nil
		case "p", "left":
			if m.cur > 0 {
				m.cur--
				m.vp.SetContent(m.files[m.cur].Diff)
				m.vp.GotoTop()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight)
			if len(m.files) > 0 {
				m.vp.SetContent(m.files[m.cur].Diff)
			}
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *reviewModel) View() string {
	if len(m.files) == 0 {
		return "nothing to review\n"
	}
	if !m.ready {
		return "loading...\n"
	}
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("[%d/%d] %s", m.cur+1, len(m.files), m.files[m.cur].Path))
	hint := lipgloss.NewStyle().Faint(true).Render("  n/p files, j/k scroll, q quit")
	return header + hint + "\n" + m.vp.View()
}
