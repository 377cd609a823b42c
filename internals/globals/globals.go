package globals

import (
	"net/http"

	"github.com/pillowmc/pillowgen/internals/cmdlog"
	"github.com/pillowmc/pillowgen/internals/ownhttp"
)

var (
	// HTTPClient is replaced once the config is read
	HTTPClient *http.Client = ownhttp.New(ownhttp.Options{})
	Logger                  = cmdlog.New()
)
