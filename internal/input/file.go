package input

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
)

// fileDocument is the on-disk layout of an input file. Figures sit next to
// the organization name:
//
//	organization: Acme
//	electricity_bill: 100
//	waste_kg: 200
type fileDocument struct {
	Organization          string `json:"organization" yaml:"organization"`
	emissions.InputRecord `yaml:",inline"`
}

// FileProvider reads input from a YAML or JSON file. Files ending in .json
// are decoded as JSON, everything else as YAML. Unknown keys are rejected so
// a misspelled field is not silently read as zero.
type FileProvider struct {
	Path string

	doc *fileDocument
}

// NewFileProvider returns a provider for path. The file is read on first use.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Organization returns the organization named in the file.
func (p *FileProvider) Organization(_ context.Context) (string, error) {
	doc, err := p.load()
	if err != nil {
		return "", err
	}
	name, err := ParseOrganization(doc.Organization)
	if err != nil {
		return "", &InvalidInputError{Field: "organization", Err: err}
	}
	return name, nil
}

// Record returns the validated figures in the file.
func (p *FileProvider) Record(_ context.Context) (emissions.InputRecord, error) {
	doc, err := p.load()
	if err != nil {
		return emissions.InputRecord{}, err
	}
	if err := validateRecord(doc.InputRecord); err != nil {
		return emissions.InputRecord{}, err
	}
	return doc.InputRecord, nil
}

func (p *FileProvider) load() (*fileDocument, error) {
	if p.doc != nil {
		return p.doc, nil
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("reading input file %s: %w", p.Path, err)
	}

	var doc fileDocument
	if strings.EqualFold(filepath.Ext(p.Path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	}
	if err != nil {
		return nil, &InvalidInputError{Field: "file", Value: p.Path, Err: fmt.Errorf("parsing input file: %w", err)}
	}

	p.doc = &doc
	return p.doc, nil
}
