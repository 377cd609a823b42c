package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pillowmc/pillowgen/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get [key]",
		Short: "Gets a global config value or lists all of them",
		Args:  cobra.MaximumNArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		keys := make([]string, 0, len(config))
		for key := range config {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s: %v\n", key, viper.Get(key))
		}
		return nil
	}

	key := strings.ToLower(args[0])
	if _, ok := config[key]; !ok {
		return fmt.Errorf("config key \"%s\" does not exist", key)
	}

	fmt.Printf("%s: %v\n", key, viper.Get(key))
	return nil
}
