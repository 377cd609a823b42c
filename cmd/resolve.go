package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pillowmc/pillowgen/internals/commands"
	"github.com/pillowmc/pillowgen/internals/downloadmgr"
	"github.com/pillowmc/pillowgen/internals/globals"
	"github.com/pillowmc/pillowgen/internals/minecraft"
	"github.com/pillowmc/pillowgen/pkg/maven"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &resolveRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "resolve <coordinate>",
		Short: "Prints the library entry of a maven artifact",
		Long: `Downloads a maven artifact and prints it as a library entry with sha1, size, url and path.
Useful to update the libraries pillowgen always adds.`,
		Example: `  pillowgen resolve net.fabricmc:mapping-io:0.5.1@jar
  pillowgen resolve --path-only net.fabricmc:intermediary:1.20.1:v2`,
		Args: cobra.ExactArgs(1),
	}, runner)
	cmd.Flags().StringVar(&runner.repo, "repo", "", "maven repository (defaults to the fabric maven)")
	cmd.Flags().BoolVar(&runner.pathOnly, "path-only", false, "only print the repository path, nothing is downloaded")

	rootCmd.AddCommand(cmd.Command)
}

type resolveRunner struct {
	repo     string
	pathOnly bool
}

func (r *resolveRunner) RunE(cmd *cobra.Command, args []string) error {
	coordinate, err := maven.Parse(args[0])
	if err != nil {
		return err
	}

	if r.pathOnly {
		fmt.Println(coordinate.Path())
		return nil
	}

	repo := r.repo
	if repo == "" {
		repo = viper.GetString("maven.fabric")
	}

	resolver := downloadmgr.New(globals.HTTPClient, globals.Logger)
	lib, err := resolver.Resolve(cmd.Context(), minecraft.LibraryReference{Name: args[0], URL: repo})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(lib)
}
