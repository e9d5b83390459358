// Package planfile reads custom plan documents from disk. Plans are authored
// as JSON, JSONC (JSON with comments and trailing commas) or YAML; the format
// is chosen by file extension, defaulting to JSONC which also accepts plain JSON.
package planfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/infrast-go/internal/application/common"
	"github.com/andrescamacho/infrast-go/internal/application/infrast"
)

// Loader implements infrast.PlanLoader against the local filesystem
type Loader struct{}

// NewLoader creates a new plan file loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads one plan document. The path must name an existing regular file;
// a single read is made with no retry.
func (l *Loader) Load(ctx context.Context, path string) (*infrast.PlanDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("custom infrast file does not exist: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("custom infrast file is not a regular file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	common.LoggerFromContext(ctx).Log(common.LevelDebug, "custom infrast file loaded", map[string]interface{}{
		"path":  path,
		"plans": len(doc.Plans),
	})

	return doc, nil
}

// Format is a plan document encoding
type Format string

const (
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSONC
}

// Parse decodes a plan document
func Parse(data []byte, format Format) (*infrast.PlanDocument, error) {
	var doc infrast.PlanDocument

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing plan document: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing plan document: %w", err)
		}
	}

	return &doc, nil
}
