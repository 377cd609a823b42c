package config

import (
	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
	configKindFloat
	configKindDuration
)

type configEntry struct {
	kind int
	help string
}

var config = map[string]configEntry{
	"meta.url":       {configKindString, "loader meta service"},
	"maven.fabric":   {configKindString, "maven repository of the intermediary mappings"},
	"maven.pillow":   {configKindString, "maven repository of pillow"},
	"http.timeout":   {configKindDuration, "timeout for every http request"},
	"http.ratelimit": {configKindFloat, "maximum http requests per second"},
	"icon":           {configKindString, "file containing the profile icon as data url"},
	"nocolor":        {configKindBool, "disable color output"},
	"verbose":        {configKindBool, "print more details"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}
