package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"

	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
)

const SpecdriftDir = ".specdrift"
const BaselineFile = "baseline.json"

const baselineSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["created_at", "accepted"],
  "properties": {
    "created_at": { "type": "string" },
    "accepted": {
      "type": "array",
      "items": { "type": "string" }
    }
  }
}`

var baselineSchemaLoader = gojsonschema.NewStringLoader(baselineSchemaJSON)

func (r *FilesystemRepository) baselinePath() string {
	return filepath.Join(r.root, SpecdriftDir, BaselineFile)
}

// SaveBaseline writes the accepted-drift snapshot, creating .specdrift/ on
// first use.
func (r *FilesystemRepository) SaveBaseline(b *drift.Baseline) error {
	if err := os.MkdirAll(filepath.Join(r.root, SpecdriftDir), 0700); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", SpecdriftDir, err)
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}
	return os.WriteFile(r.baselinePath(), data, 0600)
}

// LoadBaseline returns the accepted-drift snapshot, or (nil, nil) when none
// has been written. The file is hand-editable, so its shape is checked against
// a schema before unmarshaling.
func (r *FilesystemRepository) LoadBaseline() (*drift.Baseline, error) {
	// #nosec G304 -- Path is fixed under the workspace .specdrift directory
	data, err := os.ReadFile(r.baselinePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}

	result, err := gojsonschema.Validate(baselineSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to validate baseline: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("invalid baseline file %s: %s", r.baselinePath(), result.Errors()[0])
	}

	var b drift.Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal baseline: %w", err)
	}
	return &b, nil
}
