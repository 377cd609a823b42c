package patch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const installProfileFixture = `{
	"spec": 1,
	"profile": "NeoForge",
	"version": "neoforge-47.1.0",
	"icon": "data:image/png;base64,AAAA",
	"minecraft": "1.20.1",
	"welcome": "Welcome to the simple NeoForge installer.",
	"mirrorList": "https://neoforged.net/mirrors-installer.json",
	"data": {
		"BINPATCH": {"client": "/data/client.lzma", "server": "/data/server.lzma"},
		"MOJMAPS": {"client": "[net.minecraft:client:1.20.1:mappings@txt]", "server": "[net.minecraft:server:1.20.1:mappings@txt]"}
	},
	"processors": [
		{"sides": ["client"], "jar": "net.neoforged.installertools:installertools:2.1.2", "classpath": [], "args": ["--task", "DOWNLOAD_MOJMAPS"]},
		{"jar": "net.neoforged.installertools:binarypatcher:2.1.2:fatjar", "classpath": [], "args": ["--clean", "{MC_SRG}"]}
	],
	"libraries": [{"name": "net.neoforged.installertools:installertools:2.1.2"}]
}`

func TestInstallProfile(t *testing.T) {
	opts := newTestOptions(t)
	out := &bytes.Buffer{}

	err := InstallProfile(context.Background(), strings.NewReader(installProfileFixture), out, "pillow-1.0.0+fml-47.1.0+quilt-loader-0.26.0", opts)
	require.NoError(t, err)

	doc := decodeOutput(t, out.Bytes())
	assert.Equal(t, "Pillow", doc["profile"])
	assert.Equal(t, Icon, doc["icon"])
	assert.Equal(t, Welcome, doc["welcome"])
	assert.Equal(t, "pillow-1.0.0+fml-47.1.0+quilt-loader-0.26.0", doc["version"])
	assert.NotContains(t, doc, "mirrorList")
	assert.Equal(t, float64(1), doc["spec"])

	data := doc["data"].(map[string]interface{})
	assert.NotContains(t, data, "BINPATCH")
	assert.Contains(t, data, "MOJMAPS")

	assert.Equal(t, []string{
		"net.neoforged.installertools:installertools:2.1.2",
		"net.fabricmc:mapping-io:0.5.1@jar",
		"net.pillowmc:mappinggen:0.1.1@jar",
		"org.quiltmc:quilt-loader:0.26.0",
		"com.github.PillowMC:pillow:1.0.0-fabric",
		"net.fabricmc:intermediary:1.20.1:v2@jar",
	}, names(t, doc["libraries"]))

	libs := doc["libraries"].([]interface{})
	intermediaryPath := "net/fabricmc/intermediary/1.20.1/intermediary-1.20.1-v2.jar"
	artifact := libs[5].(map[string]interface{})["downloads"].(map[string]interface{})["artifact"].(map[string]interface{})
	assert.Equal(t, sha1Of(intermediaryPath), artifact["sha1"])
	assert.Equal(t, intermediaryPath, artifact["path"])

	processors := doc["processors"].([]interface{})
	// one removed, three added
	require.Len(t, processors, 4)
	for _, p := range processors {
		jar := p.(map[string]interface{})["jar"].(string)
		assert.False(t, strings.HasPrefix(jar, BinaryPatcherPrefix), "binary patcher is still there")
	}

	assert.Equal(t, []interface{}{
		"--task", "EXTRACT_FILES",
		"--archive", "[net.fabricmc:intermediary:1.20.1:v2@jar]",
		"--from", "mappings/mappings.tiny",
		"--to", "[net.fabricmc:intermediary:1.20.1:v2@tiny]",
	}, processors[1].(map[string]interface{})["args"])
	assert.Equal(t, []interface{}{
		"--task", "CREATE_PARENTS",
		"--target", "[net.pillowmc:intermediary2srg:1.20.1@jar]",
	}, processors[2].(map[string]interface{})["args"])
	assert.Equal(t, map[string]interface{}{
		"jar":       "net.pillowmc:mappinggen:0.1.1",
		"classpath": []interface{}{"net.fabricmc:mapping-io:0.5.1@jar", "net.pillowmc:mappinggen:0.1.1@jar"},
		"args": []interface{}{
			"{MOJMAPS}",
			"[net.fabricmc:intermediary:1.20.1:v2@tiny]",
			"[net.pillowmc:intermediary2srg:1.20.1@jar]",
		},
	}, processors[3])
}

func TestInstallProfileIsDeterministic(t *testing.T) {
	opts := newTestOptions(t)
	a, b := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, InstallProfile(context.Background(), strings.NewReader(installProfileFixture), a, "id", opts))
	require.NoError(t, InstallProfile(context.Background(), strings.NewReader(installProfileFixture), b, "id", opts))
	assert.Equal(t, a.String(), b.String())
}

func TestInstallProfileRefusesPatchedInput(t *testing.T) {
	opts := newTestOptions(t)
	first := &bytes.Buffer{}
	require.NoError(t, InstallProfile(context.Background(), strings.NewReader(installProfileFixture), first, "id", opts))

	err := InstallProfile(context.Background(), first, &bytes.Buffer{}, "id", opts)
	assert.ErrorIs(t, err, merrors.ErrAlreadyPatched)
}

func TestInstallProfileErrors(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		err     error
	}{
		{"not an object", [2]string{installProfileFixture, `"x"`}, merrors.ErrNotAnObject},
		{"no data", [2]string{`"data"`, `"dada"`}, merrors.ErrNotAnObject},
		{"data not an object", [2]string{`"data": {`, `"data": 1, "x": {`}, merrors.ErrNotAnObject},
		{"no minecraft", [2]string{`"minecraft": "1.20.1",`, ``}, merrors.ErrWrongType},
		{"empty minecraft", [2]string{`"minecraft": "1.20.1"`, `"minecraft": ""`}, merrors.ErrWrongType},
		{"no binary patcher", [2]string{`binarypatcher`, `somethingelse`}, merrors.ErrTokenNotFound},
		{"no processors", [2]string{`"processors"`, `"procs"`}, merrors.ErrWrongType},
	}

	opts := newTestOptions(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Replace(installProfileFixture, tt.replace[0], tt.replace[1], 1)
			require.NotEqual(t, installProfileFixture, input, "fixture was not modified")

			out := &bytes.Buffer{}
			err := InstallProfile(context.Background(), strings.NewReader(input), out, "id", opts)
			assert.ErrorIs(t, err, tt.err)
			assert.Zero(t, out.Len(), "nothing should be written on failure")
		})
	}
}
