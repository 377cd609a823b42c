package cmd

import (
	"io"

	"github.com/pillowmc/pillowgen/internals/commands"
	"github.com/pillowmc/pillowgen/internals/globals"
	"github.com/pillowmc/pillowgen/internals/patch"
	"github.com/spf13/cobra"
)

func init() {
	runner := &installProfileRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "install-profile <input> <output> <pillow version> <quilt loader version> <version id>",
		Short: "Generates install_profile.json",
		Long: `Rewrites NeoForge's install_profile.json so the installer sets up pillow.
<version id> is the id printed by the version-json command.`,
		Args: cobra.ExactArgs(5),
	}, runner)
	cmd.Flags().StringArrayVar(&runner.patches, "patch", nil, "additional patch file or url (can be repeated)")

	rootCmd.AddCommand(cmd.Command)
}

type installProfileRunner struct {
	patches []string
}

func (i *installProfileRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts, err := newOptions(ctx, args[2], args[3], i.patches)
	if err != nil {
		return err
	}

	err = rewriteFile(args[0], args[1], func(r io.Reader, w io.Writer) error {
		return patch.InstallProfile(ctx, r, w, args[4], opts)
	})
	if err != nil {
		return err
	}

	globals.Logger.Info("Wrote " + args[1])
	return nil
}
