// Package records loads raw record batches from host files. Malformed rows
// are skipped and counted, never fatal: a single bad record must not take
// down a recompute pass.
package records

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/penwyp/go-timeline-core/internal/core/model"
	"github.com/penwyp/go-timeline-core/internal/util"
)

// batch is the wrapper document shape; a bare top-level array is also
// accepted for JSON and YAML.
type batch struct {
	Records []model.RawRecord `json:"records" yaml:"records"`
}

// LoadFile reads a record batch, choosing the codec by file extension:
// .json, .jsonl, .yaml or .yml.
func LoadFile(path string) ([]model.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".jsonl":
		return loadJSONL(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported record file extension: %s", filepath.Ext(path))
	}
}

func loadJSON(path string) ([]model.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []model.RawRecord
	if err := sonic.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var b batch
	if err := sonic.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return b.Records, nil
}

// loadJSONL decodes one record per line, skipping lines that do not parse.
func loadJSONL(path string) ([]model.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var records []model.RawRecord
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineCount := 0
	skipped := 0
	for scanner.Scan() {
		lineCount++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var r model.RawRecord
		if err := sonic.Unmarshal([]byte(line), &r); err != nil {
			util.LogDebugf("Skip invalid JSON line %s:%d - %v", path, lineCount, err)
			skipped++
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	if skipped > 0 {
		util.LogWarnf("Skipped %d invalid lines in %s", skipped, path)
	}
	return records, nil
}

func loadYAML(path string) ([]model.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []model.RawRecord
	if err := yaml.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var b batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return b.Records, nil
}
