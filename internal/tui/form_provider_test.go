package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormProvider_CancelledByEscape(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := NewFormProvider("", strings.NewReader("\x1b"), &bytes.Buffer{})

	_, err := p.Organization(ctx)
	require.Error(t, err)

	// The form runs once; Record reports the same outcome.
	_, err2 := p.Record(ctx)
	assert.Equal(t, err, err2)
}

func TestFormProvider_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewFormProvider("Acme", strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Organization(ctx)
	require.Error(t, err)
}
