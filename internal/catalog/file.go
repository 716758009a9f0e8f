package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ananya/intern-match/internal/schemas"
	"github.com/ananya/intern-match/internal/types"
)

// FileProvider loads the catalog from a JSON file. The file is validated
// against the catalog schema when one can be resolved, then decoded. The
// file is re-read on every call so edits show up without a restart.
type FileProvider struct {
	Path string
}

// NewFileProvider creates a provider reading from the given JSON file.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// ActiveOpportunities reads, validates, and filters the catalog file.
func (p *FileProvider) ActiveOpportunities(_ context.Context) ([]types.Opportunity, error) {
	if schemaPath := schemas.ResolveSchemaPath("schemas/catalog.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, p.Path); err != nil {
			return nil, fmt.Errorf("catalog file failed validation: %w", err)
		}
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var opportunities []types.Opportunity
	if err := json.Unmarshal(data, &opportunities); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	active := make([]types.Opportunity, 0, len(opportunities))
	for _, opp := range opportunities {
		if opp.IsActive {
			active = append(active, opp)
		}
	}
	return active, nil
}
