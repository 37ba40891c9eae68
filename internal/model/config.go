package model

import "time"

// Config holds all settings for a check run
type Config struct {
	Spec     SpecConfig     `yaml:"spec" mapstructure:"spec"`
	Markdown MarkdownConfig `yaml:"markdown" mapstructure:"markdown"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// SpecConfig locates the specification document
type SpecConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`                   // Directory holding the spec
	File        string `yaml:"file" mapstructure:"file"`                 // File name inside Dir
	FrontMatter bool   `yaml:"front_matter" mapstructure:"front_matter"` // Strip a leading YAML front matter block
}

// MarkdownConfig controls how the document is parsed
type MarkdownConfig struct {
	Languages  []string `yaml:"languages" mapstructure:"languages"`   // Fenced code tags treated as JSON examples
	Extensions []string `yaml:"extensions" mapstructure:"extensions"` // Optional goldmark extensions by name
}

// OutputConfig controls failure diagnostics
type OutputConfig struct {
	Verbose     bool `yaml:"verbose" mapstructure:"verbose"`           // Print parse error detail on failure
	VeryVerbose bool `yaml:"very_verbose" mapstructure:"very_verbose"` // Also print the normalized JSON on failure
}

// ShowDetail reports whether parse error detail should be printed
func (o OutputConfig) ShowDetail() bool {
	return o.Verbose || o.VeryVerbose
}

// CacheConfig controls verdict memoization
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// LogConfig controls diagnostic logging on stderr
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // zerolog level name
}

// DefaultLanguages are the fenced code tags recognized as JSON examples
var DefaultLanguages = []string{"json", "json-doc"}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Spec: SpecConfig{
			Dir:         "docs/0.1",
			File:        "index.md",
			FrontMatter: true,
		},
		Markdown: MarkdownConfig{
			Languages: append([]string(nil), DefaultLanguages...),
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
