package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/input"
)

// ErrFormCancelled is returned when the operator leaves the form early.
var ErrFormCancelled = errors.New("input form cancelled")

// FormProvider collects input through an interactive FormModel.
// The form runs once, on the first call to Organization or Record.
type FormProvider struct {
	// Org pre-fills the organization field.
	Org string

	in  io.Reader
	out io.Writer

	once  sync.Once
	model *FormModel
	err   error
}

// NewFormProvider returns a provider that reads keys from in and draws to
// out. Nil streams mean the process's terminal.
func NewFormProvider(org string, in io.Reader, out io.Writer) *FormProvider {
	return &FormProvider{Org: org, in: in, out: out}
}

// Organization runs the form if needed and returns the organization name.
func (p *FormProvider) Organization(ctx context.Context) (string, error) {
	if err := p.run(ctx); err != nil {
		return "", err
	}
	return p.model.Organization(), nil
}

// Record runs the form if needed and returns the figures.
func (p *FormProvider) Record(ctx context.Context) (emissions.InputRecord, error) {
	if err := p.run(ctx); err != nil {
		return emissions.InputRecord{}, err
	}
	return p.model.Record(), nil
}

func (p *FormProvider) run(ctx context.Context) error {
	p.once.Do(func() {
		p.model, p.err = runForm(ctx, NewFormModel(p.Org), p.in, p.out)
	})
	return p.err
}

func runForm(ctx context.Context, m *FormModel, in io.Reader, out io.Writer) (*FormModel, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("running input form: %w", err)
	}

	fm, ok := final.(*FormModel)
	if !ok {
		return nil, fmt.Errorf("unexpected form model type %T", final)
	}

	switch fm.State() {
	case FormStateDone:
		return fm, nil
	case FormStateCancelled:
		return nil, ErrFormCancelled
	default:
		return nil, &input.InvalidInputError{Field: "form", Err: io.ErrUnexpectedEOF}
	}
}
