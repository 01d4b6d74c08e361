package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// fileSuffix is appended to the sanitized organization name.
const fileSuffix = "_carbon_footprint_report"

// fallbackName replaces an organization name that sanitizes to nothing.
const fallbackName = "organization"

// Sink persists a Report as one file per requested format.
type Sink struct {
	// Dir is created if missing.
	Dir     string
	Formats []Format

	// Overwrite replaces existing files without asking.
	Overwrite bool

	// Confirm is asked about each existing file when Overwrite is false.
	// A nil Confirm refuses, which makes Write fail with ErrReportExists.
	Confirm func(path string) bool

	Logger zerolog.Logger
}

// Path returns the file Write would produce for org in format f.
func (s Sink) Path(org string, f Format) string {
	return filepath.Join(s.Dir, SanitizeName(org)+fileSuffix+"."+f.Extension())
}

// Write renders r in every configured format and returns the written paths
// in format order. Formats render concurrently; each file is written to a
// temporary name first and renamed into place, so a failed run never leaves
// a truncated report behind.
func (s Sink) Write(ctx context.Context, r Report) ([]string, error) {
	if len(s.Formats) == 0 {
		return nil, fmt.Errorf("%w: no format given", ErrUnknownFormat)
	}

	if err := os.MkdirAll(s.dir(), 0o750); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	paths := make([]string, len(s.Formats))
	renderers := make([]Renderer, len(s.Formats))
	for i, f := range s.Formats {
		renderer, err := NewRenderer(f)
		if err != nil {
			return nil, err
		}
		renderers[i] = renderer
		paths[i] = s.Path(r.Organization, f)

		if err := s.checkExisting(paths[i]); err != nil {
			return nil, err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range s.Formats {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := writeFile(paths[i], renderers[i], r); err != nil {
				return fmt.Errorf("writing %s report: %w", s.Formats[i], err)
			}
			s.Logger.Debug().Ctx(ctx).Str("format", string(s.Formats[i])).Str("path", paths[i]).Msg("report written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func (s Sink) dir() string {
	if s.Dir == "" {
		return "."
	}
	return s.Dir
}

func (s Sink) checkExisting(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if s.Overwrite || (s.Confirm != nil && s.Confirm(path)) {
		return nil
	}
	return fmt.Errorf("%w: %s (use --force to overwrite)", ErrReportExists, path)
}

func writeFile(path string, renderer Renderer, r Report) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".carbonreport-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := renderer.Render(tmp, r); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("moving report into place: %w", err)
	}
	return nil
}

// SanitizeName makes an organization name safe as a single path component.
// Path separators, control characters and characters reserved on common
// filesystems become "_"; leading dots and surrounding spaces are dropped.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsControl(r):
			b.WriteRune('_')
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	out := strings.TrimLeft(b.String(), ".")
	out = strings.TrimSpace(out)
	if out == "" {
		return fallbackName
	}
	return out
}
