package manifest_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pillowmc/pillowgen/internals/manifest"
	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
	"id": "neoforge-20.4.80",
	"size": 12345678901234567890,
	"arguments": {"game": ["--launchTarget", "forgeclient"], "jvm": ["-Da=<b>&c", 1]},
	"data": {"BINPATCH": {"client": "/data/client.lzma"}, "MOJMAPS": {"client": "x"}},
	"libraries": []
}`

func decode(t *testing.T, s string) *manifest.Document {
	doc, err := manifest.Decode(strings.NewReader(s), "version.json")
	require.NoError(t, err)
	return doc
}

func ExampleDocument_Set() {
	doc, _ := manifest.Decode(strings.NewReader(`{"b": 1, "a": {"keep": true}}`), "example.json")
	doc.Set("id", "pillow")
	doc.Set("a.list", []string{"x", "y"})

	buf := &bytes.Buffer{}
	doc.Encode(buf)
	fmt.Print(buf.String())
	// Output: {"a":{"keep":true,"list":["x","y"]},"b":1,"id":"pillow"}
}

func TestDecodeNotAnObject(t *testing.T) {
	for _, in := range []string{`[]`, `"str"`, `1`} {
		_, err := manifest.Decode(strings.NewReader(in), "x.json")
		assert.ErrorIs(t, err, merrors.ErrNotAnObject, in)
	}
}

func TestAccessors(t *testing.T) {
	doc := decode(t, fixture)

	id, err := doc.String("id")
	require.NoError(t, err)
	assert.Equal(t, "neoforge-20.4.80", id)

	game, err := doc.Strings("arguments.game")
	require.NoError(t, err)
	assert.Equal(t, []string{"--launchTarget", "forgeclient"}, game)

	_, err = doc.Strings("arguments.jvm")
	assert.ErrorIs(t, err, merrors.ErrWrongType)

	_, err = doc.String("inheritsFrom")
	assert.ErrorIs(t, err, merrors.ErrWrongType)

	_, err = doc.String("arguments")
	assert.ErrorIs(t, err, merrors.ErrWrongType)

	_, err = doc.Object("id")
	assert.ErrorIs(t, err, merrors.ErrNotAnObject)

	_, err = doc.Array("missing.libraries")
	assert.ErrorIs(t, err, merrors.ErrNotAnObject)

	assert.True(t, doc.Has("data.MOJMAPS"))
	assert.False(t, doc.Has("data.nope"))
}

func TestRemoveAndAppend(t *testing.T) {
	doc := decode(t, fixture)

	require.NoError(t, doc.Remove("data.BINPATCH"))
	require.NoError(t, doc.Remove("mirrorList"))
	assert.False(t, doc.Has("data.BINPATCH"))

	err := doc.Remove("nope.BINPATCH")
	assert.ErrorIs(t, err, merrors.ErrNotAnObject)

	type lib struct {
		Name string `json:"name"`
	}
	require.NoError(t, doc.Append("libraries", lib{"a:b:1"}, map[string]interface{}{"name": "c:d:2"}))

	libs, err := doc.Array("libraries")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{
		map[string]interface{}{"name": "a:b:1"},
		map[string]interface{}{"name": "c:d:2"},
	}, libs)
}

func TestEncodeKeepsUnknownFields(t *testing.T) {
	doc := decode(t, fixture)

	buf := &bytes.Buffer{}
	require.NoError(t, doc.Encode(buf))

	out := buf.String()
	// big numbers and html characters survive unchanged
	assert.Contains(t, out, `"size":12345678901234567890`)
	assert.Contains(t, out, `"-Da=<b>&c"`)
	assert.Contains(t, out, `"MOJMAPS":{"client":"x"}`)
}

func TestEncodeIsDeterministic(t *testing.T) {
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, decode(t, fixture).Encode(a))
	require.NoError(t, decode(t, fixture).Encode(b))
	assert.Equal(t, a.String(), b.String())
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	for _, input := range []string{
		`{"id":"x"} {"not":"json"`,
		`{"id":"x"}{}`,
		`{"id":"x"} 1`,
	} {
		_, err := manifest.Decode(strings.NewReader(input), "version.json")
		assert.Error(t, err, input)
	}

	doc, err := manifest.Decode(strings.NewReader("{\"id\":\"x\"}\n\t \n"), "version.json")
	require.NoError(t, err)
	assert.Equal(t, "version.json", doc.Name())
}
