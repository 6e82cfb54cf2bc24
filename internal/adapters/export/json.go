package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/garmin-coach/internal/ports"
)

const (
	exportFileMode  = 0o644
	exportDirMode   = 0o755
	tempFilePattern = ".garmin-export-*"
)

// JSON serializes records to indented UTF-8 JSON. The format is generic,
// not entity-aware: any record or slice of records round-trips
// structurally through encoding/json.
type JSON struct{}

var _ ports.Exporter = JSON{}

func (JSON) Serialize(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}

	return string(data), nil
}

// Export serializes v and writes it to path, replacing any existing file.
// The write goes through a temp file and rename so a failed export never
// leaves a truncated artifact behind.
func (e JSON) Export(v any, path string) (string, error) {
	serialized, err := e.Serialize(v)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), exportDirMode); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.WriteString(serialized); err != nil {
		_ = tempFile.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Chmod(exportFileMode); err != nil {
		_ = tempFile.Close()
		return "", fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return "", fmt.Errorf("replace file: %w", err)
	}

	cleanup = false

	return serialized, nil
}
