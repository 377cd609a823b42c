package cmd

import (
	"io"
	"runtime"

	"github.com/pillowmc/pillowgen/internals/commands"
	"github.com/pillowmc/pillowgen/internals/globals"
	"github.com/pillowmc/pillowgen/internals/patch"
	"github.com/spf13/cobra"
)

func init() {
	runner := &jvmArgsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "jvm-args <input> <output> <pillow version> <quilt loader version>",
		Short: "Generates the server's jvm argument file",
		Long:  `Rewrites NeoForge's unix_args.txt or win_args.txt so the server starts pillow.`,
		Args:  cobra.ExactArgs(4),
	}, runner)
	cmd.Flags().BoolVar(&runner.windows, "windows", runtime.GOOS == "windows", "use ; as classpath separator")

	rootCmd.AddCommand(cmd.Command)
}

type jvmArgsRunner struct {
	windows bool
}

func (j *jvmArgsRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts, err := newOptions(ctx, args[2], args[3], nil)
	if err != nil {
		return err
	}

	err = rewriteFile(args[0], args[1], func(r io.Reader, w io.Writer) error {
		return patch.JVMArgs(ctx, r, w, j.windows, opts)
	})
	if err != nil {
		return err
	}

	globals.Logger.Info("Wrote " + args[1])
	return nil
}
