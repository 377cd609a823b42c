package loadermeta

import (
	"github.com/pillowmc/pillowgen/internals/minecraft"
)

const (
	// asmGroup is the bytecode toolkit forge already ships
	asmGroup = "org.ow2.asm"
	// intermediaryArtifact is the mapping layer pillow replaces
	intermediaryArtifact = "intermediary"
)

// FilterExcluded removes the libraries pillow provides by itself (asm and the intermediary mappings).
// The order of the remaining libraries is kept
func FilterExcluded(refs []minecraft.LibraryReference) []minecraft.LibraryReference {
	filtered := make([]minecraft.LibraryReference, 0, len(refs))
	for _, ref := range refs {
		c, err := ref.Coordinate()
		// malformed names are kept, resolving them reports the error
		if err == nil && (c.Group == asmGroup || c.Artifact == intermediaryArtifact) {
			continue
		}
		filtered = append(filtered, ref)
	}
	return filtered
}
