// Package runner drives a complete sort: read, extract, sort, render, write.
package runner

import (
	"io"
	"os"

	"github.com/yaklabco/rhymesort/pkg/config"
)

// Options controls a single run.
type Options struct {
	// Config is the resolved configuration for this run.
	// If nil, config.NewConfig() is used.
	Config *config.Config

	// Stdout receives the document when the output path is "-".
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// effectiveConfig returns the configuration to use, defaulting if nil.
func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}

// effectiveStdout returns the standard output writer, defaulting if nil.
func (o Options) effectiveStdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}
