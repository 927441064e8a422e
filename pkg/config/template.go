package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every option with its default value.
	// If false, generates a minimal template with options commented out.
	Full bool
}

const templateHeader = `# rhymesort configuration
# See: https://github.com/yaklabco/rhymesort
`

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(templateHeader)
	buf.WriteString(`
# Text file to sort
input: input.txt

# Result file ("-" writes to standard output)
output: result.txt

# Largest accepted input, in bytes and in lines
# max_bytes: 10000000
# max_lines: 10000000

# Sort the two views one after the other (1) or in parallel (0)
# jobs: 0

# Accept input that looks binary
# allow_binary: false

# Keep a copy of the previous result file
# backups:
#   enabled: true
#   mode: sidecar
`)

	return buf.Bytes()
}

func generateFullTemplate() ([]byte, error) {
	defaults, err := NewConfig().ToYAML()
	if err != nil {
		return nil, fmt.Errorf("render defaults: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(templateHeader)
	buf.WriteString("#\n# Every option is listed with its default value.\n\n")
	buf.Write(defaults)
	return buf.Bytes(), nil
}
