package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pillowmc/pillowgen/cmd/config"
	"github.com/pillowmc/pillowgen/internals/commands"
	"github.com/pillowmc/pillowgen/internals/globals"
	"github.com/pillowmc/pillowgen/internals/loadermeta"
	"github.com/pillowmc/pillowgen/internals/ownhttp"
	"github.com/pillowmc/pillowgen/internals/patch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set by main (goreleaser)
var Version = "dev"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pillowgen",
	Short: "Generates the Pillow installer files",
	Long:  "Rewrites the manifests of a NeoForge installer so they install Pillow instead",

	// Execute prints the one error line
	SilenceErrors: true,
	SilenceUsage:  true,

	Example: `
  pillowgen version-json version.json out/version.json 1.0.0 0.26.0
  pillowgen install-profile install_profile.json out/install_profile.json 1.0.0 0.26.0 pillow-1.0.0+fml-47.1.0+quilt-loader-0.26.0
  pillowgen jvm-args unix_args.txt out/unix_args.txt 1.0.0 0.26.0`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, commands.ErrorLine(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(config.SubCmd)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pillowgen.yaml)")
	flags.Bool("no-color", false, "disable color output")
	flags.BoolP("verbose", "v", false, "print more details")
	flags.String("meta-url", loadermeta.QuiltMetaURL, "loader meta service")
	flags.String("fabric-maven", patch.FabricMaven, "maven repository of the intermediary mappings")
	flags.String("pillow-maven", patch.PillowMaven, "maven repository of pillow")
	flags.Duration("timeout", 0, "timeout for every http request (0 waits forever)")
	flags.Float64("rate-limit", 0, "maximum http requests per second (0 is unlimited)")
	flags.String("icon", "", "file containing the profile icon as data url")

	viper.BindPFlag("nocolor", flags.Lookup("no-color"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("meta.url", flags.Lookup("meta-url"))
	viper.BindPFlag("maven.fabric", flags.Lookup("fabric-maven"))
	viper.BindPFlag("maven.pillow", flags.Lookup("pillow-maven"))
	viper.BindPFlag("http.timeout", flags.Lookup("timeout"))
	viper.BindPFlag("http.ratelimit", flags.Lookup("rate-limit"))
	viper.BindPFlag("icon", flags.Lookup("icon"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search config in home directory with name ".pillowgen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".pillowgen")
	}

	// PILLOWGEN_META_URL etc.
	viper.SetEnvPrefix("pillowgen")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	readErr := viper.ReadInConfig()

	if viper.GetBool("nocolor") || os.Getenv("CI") != "" {
		globals.Logger.DisableColor()
		commands.EmojiEnabled = false
	}
	globals.Logger.SetVerbose(viper.GetBool("verbose"))

	switch {
	case readErr == nil:
		globals.Logger.Debug("Using config file: " + viper.ConfigFileUsed())
	case cfgFile != "":
		globals.Logger.Warn(fmt.Sprintf("Could not read config file %s: %s", cfgFile, readErr))
	}

	globals.HTTPClient = ownhttp.New(ownhttp.Options{
		Timeout:   viper.GetDuration("http.timeout"),
		RateLimit: viper.GetFloat64("http.ratelimit"),
	})
}
