// Package input collects the organization name and the monthly figures that
// feed the emissions model.
//
// Every Provider returns either fully validated values or an
// *InvalidInputError; retry behavior, if any, belongs to the provider.
package input

import (
	"context"
	"errors"
	"strconv"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
)

// Provider supplies one reporting cycle's input.
type Provider interface {
	Organization(ctx context.Context) (string, error)
	Record(ctx context.Context) (emissions.InputRecord, error)
}

// Submission is everything a provider supplied for one run.
type Submission struct {
	Organization string
	Record       emissions.InputRecord
}

// Collect asks p for the organization and then the record.
func Collect(ctx context.Context, p Provider) (Submission, error) {
	org, err := p.Organization(ctx)
	if err != nil {
		return Submission{}, err
	}
	rec, err := p.Record(ctx)
	if err != nil {
		return Submission{}, err
	}
	return Submission{Organization: org, Record: rec}, nil
}

// StaticProvider returns fixed values, typically from command-line flags.
type StaticProvider struct {
	Org    string
	Values emissions.InputRecord
}

// Organization returns the trimmed fixed name.
func (p StaticProvider) Organization(_ context.Context) (string, error) {
	name, err := ParseOrganization(p.Org)
	if err != nil {
		return "", &InvalidInputError{Field: "organization", Err: err}
	}
	return name, nil
}

// Record validates and returns the fixed values.
func (p StaticProvider) Record(_ context.Context) (emissions.InputRecord, error) {
	if err := validateRecord(p.Values); err != nil {
		return emissions.InputRecord{}, err
	}
	return p.Values, nil
}

// WithOrganization overrides the organization reported by p when name is
// not blank.
func WithOrganization(p Provider, name string) Provider {
	if _, err := ParseOrganization(name); err != nil {
		return p
	}
	return orgOverride{Provider: p, name: name}
}

type orgOverride struct {
	Provider
	name string
}

func (o orgOverride) Organization(_ context.Context) (string, error) {
	return ParseOrganization(o.name)
}

// validateRecord converts a record validation failure into an
// InvalidInputError naming the first bad field.
func validateRecord(r emissions.InputRecord) error {
	err := r.Validate()
	if err == nil {
		return nil
	}

	var fieldErr *emissions.FieldError
	if !errors.As(err, &fieldErr) {
		return &InvalidInputError{Field: "record", Err: err}
	}

	value := ""
	for _, f := range Fields() {
		if f.Key == fieldErr.Field {
			value = strconv.FormatFloat(f.Get(r), 'g', -1, 64)
			break
		}
	}
	return &InvalidInputError{Field: fieldErr.Field, Value: value, Err: err}
}
