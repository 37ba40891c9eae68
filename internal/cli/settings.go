package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ppiankov/check-examples/internal/model"
)

const (
	configName = ".check-examples"
	envPrefix  = "CHECK_EXAMPLES"
)

// flagKeys maps config keys to the flags that override them
var flagKeys = map[string]string{
	"spec.dir":            "spec-dir",
	"spec.file":           "spec-file",
	"markdown.languages":  "lang",
	"markdown.extensions": "markdown-ext",
	"output.verbose":      "verbose",
	"output.very_verbose": "very-verbose",
	"log.level":           "log-level",
}

// newViper returns a viper instance seeded with the built-in defaults and
// reading CHECK_EXAMPLES_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := model.DefaultConfig()
	v.SetDefault("spec.dir", defaults.Spec.Dir)
	v.SetDefault("spec.file", defaults.Spec.File)
	v.SetDefault("spec.front_matter", defaults.Spec.FrontMatter)
	v.SetDefault("markdown.languages", defaults.Markdown.Languages)
	v.SetDefault("markdown.extensions", defaults.Markdown.Extensions)
	v.SetDefault("output.verbose", defaults.Output.Verbose)
	v.SetDefault("output.very_verbose", defaults.Output.VeryVerbose)
	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.ttl", defaults.Cache.TTL)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// readConfigFile loads the explicit config file, or ./.check-examples.yaml
// when present. Only an explicit file is required to exist.
func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// loadConfig resolves the effective configuration for cmd.
// Precedence: flags, environment, config file, defaults.
func loadConfig(cmd *cobra.Command) (model.Config, *viper.Viper, error) {
	v := newViper()
	if err := readConfigFile(v, cfgFile); err != nil {
		return model.Config{}, nil, err
	}

	flags := cmd.Flags()
	for key, name := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return model.Config{}, nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	var cfg model.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if changed(flags, "no-front-matter") && noFrontMatter {
		cfg.Spec.FrontMatter = false
	}
	if changed(flags, "no-cache") && noCache {
		cfg.Cache.Enabled = false
	}

	return cfg, v, nil
}

func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}
