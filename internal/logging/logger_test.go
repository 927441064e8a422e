package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rhymesort/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{" Info ", log.InfoLevel},
		{"fatal", log.InfoLevel},
		{"invalid", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, logging.ParseLevel(tt.name))
		})
	}
}

func TestNewWritesToGivenWriter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := logging.New(&out, "warn")

	logger.Info("hidden")
	logger.Warn("shown", logging.FieldPath, "poem.txt")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "path=poem.txt")
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := logging.NewInteractive(&out)

	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	logger.Info("created configuration file")
	assert.Contains(t, out.String(), "created configuration file")
}

func TestDefaultAndSetLevel(t *testing.T) {
	// Mutates the process-wide logger.
	original := logging.Default()
	require.NotNil(t, original)
	t.Cleanup(func() { logging.SetDefault(original) })

	replacement := logging.New(nil, "info")
	logging.SetDefault(replacement)
	assert.Same(t, replacement, logging.Default())

	logging.SetLevel("debug")
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())

	logging.SetLevel("error")
	assert.Equal(t, log.ErrorLevel, logging.Default().GetLevel())
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	logger := logging.New(nil, "warn")
	ctx := logging.WithLogger(context.Background(), logger)

	assert.Same(t, logger, logging.FromContext(ctx))
	assert.NotNil(t, logging.FromContext(context.Background()))
}
