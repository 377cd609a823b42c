package commands

import (
	"fmt"
	"os"

	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/spf13/cobra"
)

type Command struct {
	*cobra.Command
	runner Runner
}

type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wires runner into cmd. Errors are printed as a single line on stderr
// and the process exits with 1
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		err := run.RunE(cmd, args)
		if err != nil {
			fmt.Fprintln(os.Stderr, ErrorLine(merrors.WithHelp(err)))
			os.Exit(1)
		}
	}

	return build
}
