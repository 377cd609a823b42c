package patch

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pillowmc/pillowgen/internals/downloadmgr"
	"github.com/pillowmc/pillowgen/internals/loadermeta"
	"github.com/stretchr/testify/require"
)

const (
	testGame   = "1.20.1"
	testLoader = "0.26.0"
	testPillow = "1.0.0"
)

// newTestOptions starts a fake meta service and maven repository.
// Every artifact's content is its own path
func newTestOptions(t *testing.T) Options {
	var server *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/meta/", func(w http.ResponseWriter, r *http.Request) {
		var role string
		switch r.URL.Path {
		case fmt.Sprintf("/meta/versions/loader/%s/%s/profile/json", testGame, testLoader):
			role = "profile"
		case fmt.Sprintf("/meta/versions/loader/%s/%s/server/json", testGame, testLoader):
			role = "server"
		default:
			http.NotFound(w, r)
			return
		}
		maven := server.URL + "/maven/"
		fmt.Fprintf(w, `{"id": "%s", "libraries": [
			{"name": "org.ow2.asm:asm:9.6", "url": "%s"},
			{"name": "org.quiltmc:quilt-loader:%s", "url": "%s"},
			{"name": "net.fabricmc:intermediary:%s", "url": "%s"}
		]}`, role, maven, testLoader, maven, testGame, maven)
	})
	mux.HandleFunc("/maven/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.TrimPrefix(r.URL.Path, "/maven/")))
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	meta, err := loadermeta.New(server.Client(), server.URL+"/meta/")
	require.NoError(t, err)

	return Options{
		PillowVersion: testPillow,
		LoaderVersion: testLoader,
		Meta:          meta,
		Resolver:      downloadmgr.New(server.Client(), nil),
		Repositories: Repositories{
			Fabric: server.URL + "/maven/",
			Pillow: server.URL + "/maven/",
		},
	}
}

func sha1Of(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func decodeOutput(t *testing.T, raw []byte) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// names returns the "name" of every library
func names(t *testing.T, libs interface{}) []string {
	list, ok := libs.([]interface{})
	require.True(t, ok, "libraries is not an array")
	result := make([]string, len(list))
	for i, lib := range list {
		result[i] = lib.(map[string]interface{})["name"].(string)
	}
	return result
}
