package patch

import (
	"context"
	"encoding/json"

	"github.com/pillowmc/pillowgen/internals/manifest"
)

// AddLibraries appends libraries (in any format) to the libraries array
type AddLibraries struct {
	args struct {
		Libraries []json.RawMessage `json:"libraries"`
	}
}

func (a *AddLibraries) Args() any {
	return &a.args
}

func (a *AddLibraries) Apply(ctx context.Context, doc *manifest.Document) error {
	libraries := make([]interface{}, len(a.args.Libraries))
	for i, lib := range a.args.Libraries {
		libraries[i] = lib
	}
	return doc.Append("libraries", libraries...)
}
