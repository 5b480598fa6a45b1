package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"freelance-pricing/core/catalog"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	promptStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	checkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	descStyle    = lipgloss.NewStyle().Faint(true).PaddingLeft(6)
	footerStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	if m.result != nil {
		var b strings.Builder
		_ = m.render.Render(&b, m.result)
		b.WriteString(footerStyle.Render("q pour quitter"))
		b.WriteString("\n")
		return b.String()
	}

	q := m.current()
	var b strings.Builder

	if title := m.sectionTitle(q.Section); title != "" {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n\n")
	}
	b.WriteString(promptStyle.Render(fmt.Sprintf("%d/%d  %s", m.idx+1, len(m.questions), q.Prompt)))
	b.WriteString("\n")
	if q.Help != "" {
		b.WriteString(helpStyle.Render(q.Help))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch q.Type {
	case catalog.TypeNumber:
		b.WriteString(m.input.View())
		if q.Unit != "" {
			b.WriteString(" " + q.Unit)
		}
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("entrée pour valider"))

	case catalog.TypeTextarea:
		b.WriteString(m.area.View())
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("ctrl+d pour valider, esc pour passer"))

	case catalog.TypeMultiple:
		m.writeOptions(&b, q, true)
		b.WriteString(footerStyle.Render("espace pour cocher, entrée pour valider"))

	default:
		m.writeOptions(&b, q, false)
		b.WriteString(footerStyle.Render("entrée pour choisir"))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) writeOptions(b *strings.Builder, q catalog.Question, multi bool) {
	for i, opt := range q.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := ""
		if multi {
			mark = "[ ] "
			if m.selected[i] {
				mark = checkStyle.Render("[x] ")
			}
		}
		b.WriteString(cursor + mark + opt.Label + "\n")
		if opt.Description != "" {
			b.WriteString(descStyle.Render(opt.Description))
			b.WriteString("\n")
		}
	}
}

func (m Model) sectionTitle(sectionID string) string {
	for _, s := range m.catalog.Sections {
		if s.ID == sectionID {
			return s.Title
		}
	}
	return ""
}
