package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/input"
)

// FormState is the lifecycle state of the input form.
type FormState int

const (
	// FormStateEditing means the operator is still filling in fields.
	FormStateEditing FormState = iota
	// FormStateDone means every field holds a valid value.
	FormStateDone
	// FormStateCancelled means the operator quit before finishing.
	FormStateCancelled
)

const (
	formInputWidth = 40
	formCharLimit  = 64
	orgFieldKey    = "organization"
)

// formField pairs a text input with the input.Field it fills. The
// organization entry has a nil field.
type formField struct {
	key   string
	label string
	input textinput.Model
	field *input.Field
}

// FormModel is the bubbletea model that asks for the organization name and
// the seven monthly figures, one field at a time. Enter validates the
// focused field and moves on; invalid text keeps focus and shows the reason.
type FormModel struct {
	fields []formField
	focus  int
	state  FormState
	errMsg string

	organization string
	record       emissions.InputRecord
}

// NewFormModel returns a form with the organization field focused.
// A non-empty org pre-fills the organization field.
func NewFormModel(org string) *FormModel {
	specs := input.Fields()
	fields := make([]formField, 0, len(specs)+1)

	orgInput := newTextInput("organization name")
	orgInput.SetValue(org)
	fields = append(fields, formField{
		key:   orgFieldKey,
		label: strings.TrimSpace(input.OrganizationPrompt),
		input: orgInput,
	})

	for i := range specs {
		fields = append(fields, formField{
			key:   specs[i].Key,
			label: strings.TrimSpace(specs[i].Prompt),
			input: newTextInput(specs[i].Placeholder),
			field: &specs[i],
		})
	}

	m := &FormModel{fields: fields}
	m.fields[0].input.Focus()
	return m
}

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = formCharLimit
	ti.Width = formInputWidth
	ti.Prompt = "> "
	return ti
}

// Init starts the cursor blink.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and forwards everything else to the focused
// text input.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if model, cmd, handled := m.handleKeyMsg(key); handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

// handleKeyMsg processes navigation keys. The boolean is false for keys
// the text input should receive.
//
//nolint:exhaustive // Only navigation keys are handled here.
func (m *FormModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = FormStateCancelled
		return m, tea.Quit, true

	case tea.KeyEnter, tea.KeyTab:
		if err := m.commit(m.focus); err != nil {
			m.errMsg = err.Error()
			return m, nil, true
		}
		m.errMsg = ""
		if m.focus == len(m.fields)-1 {
			m.state = FormStateDone
			return m, tea.Quit, true
		}
		return m, m.setFocus(m.focus + 1), true

	case tea.KeyShiftTab, tea.KeyUp:
		if m.focus > 0 {
			m.errMsg = ""
			return m, m.setFocus(m.focus - 1), true
		}
		return m, nil, true
	}

	return m, nil, false
}

// commit validates field i and stores its value.
func (m *FormModel) commit(i int) error {
	f := m.fields[i]
	raw := f.input.Value()

	if f.field == nil {
		name, err := input.ParseOrganization(raw)
		if err != nil {
			return err
		}
		m.organization = name
		return nil
	}

	v, err := input.ParseValue(raw)
	if err != nil {
		return err
	}
	f.field.Set(&m.record, v)
	return nil
}

func (m *FormModel) setFocus(i int) tea.Cmd {
	m.fields[m.focus].input.Blur()
	m.focus = i
	return m.fields[m.focus].input.Focus()
}

// View renders the completed fields, the focused field and any error.
func (m *FormModel) View() string {
	if m.state != FormStateEditing {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Carbon Footprint Input"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		switch {
		case i < m.focus:
			b.WriteString(LabelStyle.Render(f.label + " "))
			b.WriteString(ValueStyle.Render(strings.TrimSpace(f.input.Value())))
			b.WriteString("\n")
		case i == m.focus:
			b.WriteString(HighlightStyle.Render(f.label))
			b.WriteString("\n")
			b.WriteString(f.input.View())
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render("Invalid input: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("enter: next • shift+tab: back • esc: cancel"))
	return b.String()
}

// State returns the form's lifecycle state.
func (m *FormModel) State() FormState {
	return m.state
}

// Organization returns the validated organization name.
func (m *FormModel) Organization() string {
	return m.organization
}

// Record returns the validated figures. It is complete only in FormStateDone.
func (m *FormModel) Record() emissions.InputRecord {
	return m.record
}
