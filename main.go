package main

import (
	"net/http"

	"github.com/pillowmc/pillowgen/cmd"
	"github.com/pillowmc/pillowgen/internals/ownhttp"
)

// set by goreleaser
var version string

func main() {
	// replace default http client
	http.DefaultClient = ownhttp.New(ownhttp.Options{})

	if version != "" {
		cmd.Version = version
	}
	cmd.Execute()
}
