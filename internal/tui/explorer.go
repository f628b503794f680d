// Package tui is an interactive terminal explorer: type an expression,
// get a live plot and analysis report.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/funcscope/internal/session"
	"github.com/san-kum/funcscope/internal/viz"
)

type model struct {
	sess          *session.Session
	input         string
	errMsg        string
	width, height int
}

// Run starts the explorer over an existing session. Blocks until quit.
func Run(sess *session.Session) error {
	m := model{sess: sess, width: 80, height: 24}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if strings.TrimSpace(m.input) == "" {
			return m, nil
		}
		if _, err := m.sess.Submit(m.input); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		return m, nil
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case "left":
		return m.pan(-1), nil
	case "right":
		return m.pan(1), nil
	case "ctrl+u":
		m.input = ""
		return m, nil
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.input += msg.String()
	}
	return m, nil
}

// pan shifts the view window by a tenth of its width per keypress.
func (m model) pan(dir float64) model {
	v := m.sess.View()
	shift := dir * (v.XMax - v.XMin) / 10
	v.XMin += shift
	v.XMax += shift
	m.sess.SetView(v)
	return m
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(viz.Title.Render("funcscope") + "\n\n")
	b.WriteString(viz.Label.Render("f(x) = ") + viz.Value.Render(m.input) + viz.Value.Render("▌") + "\n")
	if m.errMsg != "" {
		b.WriteString(viz.Err.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n")

	if ev := m.sess.Evaluator(); ev != nil {
		v := m.sess.View()
		plotW := m.width - 12
		plotH := m.height - 16
		if plotW > 20 && plotH > 4 {
			b.WriteString(viz.Graph.Render(viz.Plot(ev, v.XMin, v.XMax, v.YMin, v.YMax, plotW, plotH)) + "\n\n")
		}
		if r := m.sess.Report(); r != nil {
			b.WriteString(viz.RenderReport(r))
		}
		b.WriteString(viz.RenderAsymptotes(m.sess.Asymptotes()) + "\n")
	}

	b.WriteString("\n" + viz.Hint.Render("enter: analyze  ←/→: pan  ctrl+u: clear  esc: quit"))
	return b.String()
}
