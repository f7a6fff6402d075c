// Package catalog serves the static resource catalog embedded in every
// generation prompt. The backing file is re-read on each call so edits are
// picked up without a restart; there is no watcher or cache.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

type Repository interface {
	Resources(ctx context.Context) ([]map[string]any, error)
}

type fileRepo struct {
	path string
}

func NewFileRepository(path string) Repository {
	return &fileRepo{path: path}
}

func (r *fileRepo) Resources(ctx context.Context) ([]map[string]any, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resources file: %w", err)
	}

	var doc struct {
		Resources []map[string]any `json:"resources"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse resources file: %w", err)
	}

	return doc.Resources, nil
}
