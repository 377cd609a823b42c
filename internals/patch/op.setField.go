package patch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pillowmc/pillowgen/internals/manifest"
)

// SetField sets (or replaces) a single field
type SetField struct {
	args struct {
		Path  string          `json:"path"`
		Value json.RawMessage `json:"value"`
	}
}

func (s *SetField) Args() any {
	return &s.args
}

func (s *SetField) Apply(ctx context.Context, doc *manifest.Document) error {
	if s.args.Path == "" {
		return fmt.Errorf("path is empty")
	}
	if len(s.args.Value) == 0 {
		return fmt.Errorf("value is missing")
	}
	return doc.Set(s.args.Path, s.args.Value)
}

// RemoveField removes a single field
type RemoveField struct {
	args struct {
		Path string `json:"path"`
	}
}

func (r *RemoveField) Args() any {
	return &r.args
}

func (r *RemoveField) Apply(ctx context.Context, doc *manifest.Document) error {
	if r.args.Path == "" {
		return fmt.Errorf("path is empty")
	}
	return doc.Remove(r.args.Path)
}
