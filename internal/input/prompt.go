package input

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
)

// PromptProvider asks for each value on a line-oriented terminal and keeps
// asking until the answer is valid.
type PromptProvider struct {
	scanner *bufio.Scanner
	out     io.Writer

	// MaxAttempts caps tries per question; 0 means unlimited.
	MaxAttempts int
}

// NewPromptProvider reads answers from r and writes questions to w.
func NewPromptProvider(r io.Reader, w io.Writer) *PromptProvider {
	return &PromptProvider{scanner: bufio.NewScanner(r), out: w}
}

// Organization asks for the organization name.
func (p *PromptProvider) Organization(ctx context.Context) (string, error) {
	var name string
	err := p.ask(ctx, "organization", OrganizationPrompt, func(raw string) error {
		v, err := ParseOrganization(raw)
		name = v
		return err
	})
	return name, err
}

// Record asks every numeric question in Fields order.
func (p *PromptProvider) Record(ctx context.Context) (emissions.InputRecord, error) {
	var rec emissions.InputRecord
	for _, f := range Fields() {
		err := p.ask(ctx, f.Key, f.Prompt, func(raw string) error {
			v, err := ParseValue(raw)
			if err == nil {
				f.Set(&rec, v)
			}
			return err
		})
		if err != nil {
			return emissions.InputRecord{}, err
		}
	}
	return rec, nil
}

// ask writes prompt, reads a line and hands it to accept until accept
// succeeds, input ends, ctx is done, or MaxAttempts is reached.
func (p *PromptProvider) ask(ctx context.Context, key, prompt string, accept func(string) error) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprint(p.out, prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return fmt.Errorf("reading %s: %w", key, err)
			}
			return fmt.Errorf("reading %s: %w", key, io.ErrUnexpectedEOF)
		}

		raw := p.scanner.Text()
		err := accept(raw)
		if err == nil {
			return nil
		}

		_, _ = fmt.Fprintf(p.out, "Invalid input. %s Please enter a valid %s value.\n", sentence(err), kind(key))

		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return &InvalidInputError{Field: key, Value: raw, Err: fmt.Errorf("%w: %w", ErrAttemptsExhausted, err)}
		}
	}
}

func kind(key string) string {
	if key == "organization" {
		return "name"
	}
	return "float"
}
