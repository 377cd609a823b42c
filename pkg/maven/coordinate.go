// Package maven parses maven coordinates (group:artifact:version[:classifier][@ext])
// and derives repository paths from them.
package maven

import (
	"strings"

	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/pkg/errors"
)

// DefaultExtension is used if a coordinate does not specify one
const DefaultExtension = "jar"

// Coordinate identifies one file in a maven repository
type Coordinate struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
	// Extension is never empty after parsing, it defaults to "jar"
	Extension string

	explicitExtension bool
}

// Parse parses a coordinate like `net.fabricmc:intermediary:1.20.1:v2@jar`
func Parse(text string) (Coordinate, error) {
	parts := strings.SplitN(text, ":", 4)
	if len(parts) < 3 {
		return Coordinate{}, errors.Wrapf(merrors.ErrMalformedCoordinate, "%q needs at least group:artifact:version", text)
	}

	c := Coordinate{
		Group:     parts[0],
		Artifact:  parts[1],
		Version:   parts[2],
		Extension: DefaultExtension,
	}

	// the extension is attached to whatever segment comes last
	last := &c.Version
	if len(parts) == 4 {
		c.Classifier = parts[3]
		last = &c.Classifier
	}
	if value, ext, ok := strings.Cut(*last, "@"); ok {
		*last = value
		if ext != "" {
			c.Extension = ext
			c.explicitExtension = true
		}
	}

	if c.Group == "" || c.Artifact == "" || c.Version == "" {
		return Coordinate{}, errors.Wrapf(merrors.ErrMalformedCoordinate, "%q has an empty group, artifact or version", text)
	}

	return c, nil
}

// MustParse is like Parse but panics on malformed input. Only use it for constants
func MustParse(text string) Coordinate {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Path returns the repository relative path of this coordinate,
// for example `net/fabricmc/intermediary/1.20.1/intermediary-1.20.1-v2.jar`
func (c Coordinate) Path() string {
	ext := c.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	file := c.Artifact + "-" + c.Version
	if c.Classifier != "" {
		file += "-" + c.Classifier
	}
	file += "." + ext

	return strings.Join([]string{
		strings.ReplaceAll(c.Group, ".", "/"),
		c.Artifact,
		c.Version,
		file,
	}, "/")
}

// String returns the coordinate in its `g:a:v[:c][@ext]` notation.
// The extension is only included if it was given explicitly (or set with WithExtension)
func (c Coordinate) String() string {
	s := c.Group + ":" + c.Artifact + ":" + c.Version
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	if c.explicitExtension {
		s += "@" + c.Extension
	}
	return s
}

// WithExtension returns a copy of the coordinate pointing to a file with another extension
func (c Coordinate) WithExtension(ext string) Coordinate {
	c.Extension = ext
	c.explicitExtension = true
	return c
}

// MarshalText implements encoding.TextMarshaler
func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
