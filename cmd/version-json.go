package cmd

import (
	"fmt"
	"io"

	"github.com/pillowmc/pillowgen/internals/commands"
	"github.com/pillowmc/pillowgen/internals/patch"
	"github.com/spf13/cobra"
)

func init() {
	runner := &versionJSONRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "version-json <input> <output> <pillow version> <quilt loader version>",
		Short: "Generates version.json",
		Long: `Rewrites NeoForge's version.json so the launcher starts pillow.
The generated version id is printed to stdout.`,
		Args: cobra.ExactArgs(4),
	}, runner)
	cmd.Flags().StringArrayVar(&runner.patches, "patch", nil, "additional patch file or url (can be repeated)")

	rootCmd.AddCommand(cmd.Command)
}

type versionJSONRunner struct {
	patches []string
}

func (v *versionJSONRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts, err := newOptions(ctx, args[2], args[3], v.patches)
	if err != nil {
		return err
	}

	var id string
	err = rewriteFile(args[0], args[1], func(r io.Reader, w io.Writer) error {
		id, err = patch.VersionJSON(ctx, r, w, opts)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}
