package patch

import (
	"context"
	"fmt"
	"strings"

	"github.com/pillowmc/pillowgen/internals/manifest"
)

// RemoveLibraries removes all libraries whose name starts with a prefix
type RemoveLibraries struct {
	args struct {
		Prefix string `json:"prefix"`
	}
}

func (r *RemoveLibraries) Args() any {
	return &r.args
}

func (r *RemoveLibraries) Apply(ctx context.Context, doc *manifest.Document) error {
	prefix := r.args.Prefix
	if prefix == "" {
		return fmt.Errorf("prefix is empty")
	}

	libraries, err := doc.Array("libraries")
	if err != nil {
		return err
	}

	filtered := make([]interface{}, 0, len(libraries))
	for _, lib := range libraries {
		obj, _ := lib.(map[string]interface{})
		name, _ := obj["name"].(string)
		if !strings.HasPrefix(name, prefix) {
			filtered = append(filtered, lib)
		}
	}
	return doc.Set("libraries", filtered)
}
