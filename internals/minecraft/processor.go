package minecraft

// Processor is a step the forge installer runs after all libraries were downloaded.
// Arguments in brackets (`[g:a:v]`) are replaced with library paths, arguments
// in braces (`{MOJMAPS}`) with entries of the `data` section
type Processor struct {
	Jar       string   `json:"jar"`
	Classpath []string `json:"classpath"`
	Args      []string `json:"args"`
}
