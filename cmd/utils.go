package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dchest/uniuri"
	"github.com/pillowmc/pillowgen/internals/downloadmgr"
	"github.com/pillowmc/pillowgen/internals/globals"
	"github.com/pillowmc/pillowgen/internals/loadermeta"
	"github.com/pillowmc/pillowgen/internals/patch"
	"github.com/spf13/viper"
)

// newOptions builds the rewrite options from the config
func newOptions(ctx context.Context, pillowVersion, loaderVersion string, patchLocations []string) (patch.Options, error) {
	meta, err := loadermeta.New(globals.HTTPClient, viper.GetString("meta.url"))
	if err != nil {
		return patch.Options{}, err
	}

	opts := patch.Options{
		PillowVersion: pillowVersion,
		LoaderVersion: loaderVersion,
		Meta:          meta,
		Resolver:      downloadmgr.New(globals.HTTPClient, globals.Logger),
		Repositories: patch.Repositories{
			Fabric: viper.GetString("maven.fabric"),
			Pillow: viper.GetString("maven.pillow"),
		},
		Logger: globals.Logger,
	}

	if iconFile := viper.GetString("icon"); iconFile != "" {
		icon, err := os.ReadFile(iconFile)
		if err != nil {
			return patch.Options{}, fmt.Errorf("could not read icon: %w", err)
		}
		opts.Icon = string(bytes.TrimSpace(icon))
	}

	for _, location := range patchLocations {
		p, err := patch.FetchPatch(ctx, globals.HTTPClient, location)
		if err != nil {
			return patch.Options{}, fmt.Errorf("could not load patch %s: %w", location, err)
		}
		opts.Extra = append(opts.Extra, p)
	}

	return opts, nil
}

// rewriteFile runs rewrite with the input file and writes the result to output.
// The output file is only created if rewrite succeeds
func rewriteFile(input string, output string, rewrite func(r io.Reader, w io.Writer) error) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	buf := &bytes.Buffer{}
	if err := rewrite(in, buf); err != nil {
		return err
	}

	return writeAtomic(output, buf.Bytes())
}

// writeAtomic writes data to a temporary file next to path and renames it
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+uniuri.NewLen(8))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
