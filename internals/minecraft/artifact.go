package minecraft

// Artifact is an object describing a "thing" that can be downloaded
type Artifact struct {
	Sha1 string `json:"sha1"`
	// Size in bytes
	Size int64 `json:"size"`
	// URL to download the jar file
	URL string `json:"url"`
	// Path of the jar file relative to the libraries folder
	Path string `json:"path"`
}
