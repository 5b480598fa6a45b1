// Package tui is the interactive questionnaire: it walks the question
// catalog section by section, collects an answer set, and invokes the
// engine exactly once when every required answer is present. It contains
// no pricing logic of its own.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"freelance-pricing/core/catalog"
	"freelance-pricing/core/engine"
	"freelance-pricing/core/output"
	"freelance-pricing/core/types"
)

// Model is the bubbletea model for the questionnaire.
type Model struct {
	catalog *catalog.Catalog
	engine  *engine.Engine
	render  *output.CLIFormatter

	questions []catalog.Question
	answers   types.AnswerSet

	idx      int
	cursor   int
	selected map[int]bool

	input textinput.Model
	area  textarea.Model

	result *types.PricingResult
	width  int
	quit   bool
}

// New builds the questionnaire model.
func New(cat *catalog.Catalog, eng *engine.Engine) Model {
	input := textinput.New()
	input.Placeholder = "2000"
	input.CharLimit = 6
	input.Width = 12

	area := textarea.New()
	area.SetHeight(4)
	area.CharLimit = 600

	m := Model{
		catalog:   cat,
		engine:    eng,
		render:    output.NewCLI(eng.Tables()),
		questions: cat.Questions,
		answers:   make(types.AnswerSet),
		selected:  make(map[int]bool),
		input:     input,
		area:      area,
	}
	m.focusCurrent()
	return m
}

// Run starts the questionnaire and returns the collected answer set's
// pricing result, or nil if the user bailed out.
func Run(cat *catalog.Catalog, eng *engine.Engine) (*types.PricingResult, error) {
	final, err := tea.NewProgram(New(cat, eng)).Run()
	if err != nil {
		return nil, err
	}
	m := final.(Model)
	return m.result, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		if m.result != nil {
			// Result screen: any of these keys leaves.
			switch msg.String() {
			case "q", "enter", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateQuestion(msg)
	}

	return m.updateWidgets(msg)
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.current()

	switch q.Type {
	case catalog.TypeNumber:
		switch msg.String() {
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" && q.Required {
				return m, nil
			}
			m.answers[q.ID] = types.NumericString(raw)
			return m.advance()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case catalog.TypeTextarea:
		switch msg.String() {
		case "ctrl+d", "esc":
			if text := strings.TrimSpace(m.area.Value()); text != "" {
				m.answers[q.ID] = types.FreeText(text)
			}
			return m.advance()
		}
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		return m, cmd

	case catalog.TypeMultiple:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "enter":
			codes := make([]string, 0, len(m.selected))
			for i, opt := range q.Options {
				if m.selected[i] {
					codes = append(codes, opt.Value)
				}
			}
			if len(codes) == 0 && q.Required {
				return m, nil
			}
			m.answers[q.ID] = types.MultiChoice(codes...)
			return m.advance()
		}
		return m, nil

	default: // dropdown, radio
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case "enter":
			m.answers[q.ID] = types.SingleChoice(q.Options[m.cursor].Value)
			return m.advance()
		}
		return m, nil
	}
}

func (m Model) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.area, cmd = m.area.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) current() catalog.Question {
	return m.questions[m.idx]
}

// advance moves to the next question, or runs the engine once the
// catalog is exhausted and nothing required is missing.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.idx < len(m.questions)-1 {
		m.idx++
		m.cursor = 0
		m.selected = make(map[int]bool)
		m.focusCurrent()
		return m, nil
	}

	if missing := m.catalog.MissingRequired(m.answers); len(missing) > 0 {
		// Jump back to the first unanswered required question.
		for i, q := range m.questions {
			if q.ID == missing[0] {
				m.idx = i
				break
			}
		}
		m.cursor = 0
		m.selected = make(map[int]bool)
		m.focusCurrent()
		return m, nil
	}

	m.result = m.engine.ComputePricing(m.answers)
	return m, nil
}

func (m *Model) focusCurrent() {
	m.input.Blur()
	m.area.Blur()
	switch m.current().Type {
	case catalog.TypeNumber:
		m.input.SetValue("")
		m.input.Focus()
	case catalog.TypeTextarea:
		m.area.SetValue("")
		m.area.Placeholder = m.current().Placeholder
		m.area.Focus()
	}
}
