package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out", "out.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0644))

	err := rewriteFile(input, output, func(r io.Reader, w io.Writer) error {
		raw, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(strings.ToUpper(string(raw))))
		return err
	})
	require.NoError(t, err)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", string(written))

	entries, err := os.ReadDir(filepath.Dir(output))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file was not cleaned up")
}

func TestRewriteFileWritesNothingOnError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0644))

	err := rewriteFile(input, output, func(r io.Reader, w io.Writer) error {
		w.Write([]byte("partial"))
		return errors.New("boom")
	})
	require.Error(t, err)

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err), "output must not exist")
}

func TestRewriteFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := rewriteFile(filepath.Join(dir, "nope"), filepath.Join(dir, "out"), func(r io.Reader, w io.Writer) error {
		return nil
	})
	assert.Error(t, err)
}
