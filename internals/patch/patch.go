package patch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pillowmc/pillowgen/internals/manifest"
	"github.com/stoewer/go-strcase"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Patch is a list of additional operations users can apply after the built-in rewrite
type Patch struct {
	// Name is the name of the patch
	Name string `json:"name"`
	// Description is a description of the patch
	Description string `json:"description"`

	// For is the document the patch is for ("version.json" or "install_profile.json").
	// Empty means any document
	For string `json:"for"`
	// Patches is the list of patches
	Patches []PatchOperation `json:"patches"`
}

type PatchOperation struct {
	// Action is the action to perform
	Action string `json:"action"`
	// With are the arguments for the action
	With json.RawMessage `json:"with"`
}

type Operator interface {
	// Apply applies the operation to the given document
	Apply(ctx context.Context, doc *manifest.Document) error
	// Args returns the arguments for the operator (filled from PatchOperation.With)
	Args() any
}

var (
	// Operations maps action names to constructors. Action names are
	// normalized to lowerCamelCase, so "remove-field" works too
	Operations = map[string]func() Operator{
		"setField":        func() Operator { return &SetField{} },
		"removeField":     func() Operator { return &RemoveField{} },
		"addLibraries":    func() Operator { return &AddLibraries{} },
		"removeLibraries": func() Operator { return &RemoveLibraries{} },
	}
)

// Apply runs all operations of the patch on doc
func (p *Patch) Apply(ctx context.Context, doc *manifest.Document) error {
	if p.For != "" && p.For != doc.Name() {
		return fmt.Errorf("patch %q is for %s, not %s", p.Name, p.For, doc.Name())
	}

	for i, operation := range p.Patches {
		newOperator := Operations[strcase.LowerCamelCase(operation.Action)]
		if newOperator == nil {
			return fmt.Errorf("patch %q: unknown action %q", p.Name, operation.Action)
		}
		operator := newOperator()

		if len(operation.With) != 0 {
			if err := json.Unmarshal(operation.With, operator.Args()); err != nil {
				return fmt.Errorf("patch %q: failed to unmarshal arguments of operation %d: %w", p.Name, i, err)
			}
		}

		if err := operator.Apply(ctx, doc); err != nil {
			return fmt.Errorf("patch %q: %s: %w", p.Name, operation.Action, err)
		}
	}
	return nil
}

// FetchPatch fetches a patch from the given location (can be a URL or a local path)
func FetchPatch(ctx context.Context, client *http.Client, location string) (*Patch, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return FetchPatchFromURL(ctx, client, location)
	}

	return FetchPatchFromFile(ctx, location)
}

// FetchPatchFromURL fetches a patch from a URL
func FetchPatchFromURL(ctx context.Context, client *http.Client, url string) (*Patch, error) {
	if client == nil {
		client = http.DefaultClient
	}
	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed to fetch patch: %s", response.Status)
	}

	isYAML := strings.Contains(response.Header.Get("Content-Type"), "yaml") || hasYAMLExt(url)
	return decodePatch(response.Body, isYAML)
}

// FetchPatchFromFile fetches a patch from a local file
func FetchPatchFromFile(ctx context.Context, path string) (*Patch, error) {
	// try to open the file
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return decodePatch(file, hasYAMLExt(path))
}

func hasYAMLExt(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yml" || ext == ".yaml"
}

// decodePatch reads a JSON or YAML patch. YAML is converted to JSON first,
// so operation arguments are always json.RawMessage
func decodePatch(r io.Reader, isYAML bool) (*Patch, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if isYAML {
		var generic interface{}
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("invalid yaml patch: %w", err)
		}
		if raw, err = json.Marshal(generic); err != nil {
			return nil, fmt.Errorf("yaml patch can not be represented as json: %w", err)
		}
	}

	// comments and trailing commas are allowed in json patches
	raw = jsonc.ToJSON(raw)

	var patch Patch
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil, fmt.Errorf("invalid patch: %w", err)
	}
	return &patch, nil
}
