package report

import "errors"

var (
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrReportExists indicates the target file exists and overwriting was
	// neither forced nor confirmed.
	ErrReportExists = errors.New("report file already exists")
)
