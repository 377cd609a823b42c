package minecraft

import (
	"github.com/pillowmc/pillowgen/pkg/maven"
)

// LibraryReference is a library only known by its name and the repository
// it can be fetched from. Fabric and Quilt meta use this format.
type LibraryReference struct {
	Name string `json:"name"`
	// URL is the base url of the maven repository (with trailing slash).
	// Empty means the launcher has to find it by itself
	URL string `json:"url,omitempty"`
}

// Coordinate parses the Name of this library
func (l LibraryReference) Coordinate() (maven.Coordinate, error) {
	return maven.Parse(l.Name)
}

// Filepath returns the target filepath for this library relative to the libraries folder
func (l LibraryReference) Filepath() (string, error) {
	c, err := l.Coordinate()
	if err != nil {
		return "", err
	}
	return c.Path(), nil
}

// Library is a minecraft library with verified download information
// (the format used by vanilla and forge manifests)
type Library struct {
	// Name can be used to identify the library, but is not required otherwise.
	Name      string    `json:"name"`
	Downloads Downloads `json:"downloads"`
}

// Downloads lists the files of a library
type Downloads struct {
	Artifact Artifact `json:"artifact"`
}

// NewLibrary returns a library that points to the given artifact
func NewLibrary(name string, artifact Artifact) *Library {
	return &Library{Name: name, Downloads: Downloads{Artifact: artifact}}
}
