package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/check-examples/internal/model"
)

// Version is the release reported by the version command
const Version = "v0.1.0"

var (
	cfgFile       string
	specDir       string
	specFile      string
	verbose       bool
	veryVerbose   bool
	languages     []string
	extensions    []string
	noFrontMatter bool
	noCache       bool
	logLevel      string

	// tally of the last run, read by Execute
	lastTally model.Tally
)

// rootCmd checks the examples; subcommands manage configuration
var rootCmd = &cobra.Command{
	Use:   "check-examples",
	Short: "Check JSON in EMM specification examples. Zero exit on success.",
	Long: `check-examples validates the JSON examples embedded in the EMM specification.

It reads <spec-dir>/index.md, walks the top-level markdown blocks and parses
every fenced code block tagged json or json-doc. Each example is reported
under the most recent heading.

Before parsing, a bare property fragment ("key": value) is wrapped in an
object and whole-line // comments are replaced with a placeholder property.

The exit status is the number of examples that failed to parse, so the
command can gate a CI pipeline. A missing spec file is not an error.

Example:
  check-examples
  check-examples -d docs/0.2 -v
  check-examples --spec-dir docs/0.1 -V --lang json --lang jsonc`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCheck,
}

// Execute runs the root command and returns the process exit status for a
// successful run. A non-nil error means the run could not complete.
func Execute() (int, error) {
	lastTally = model.Tally{}
	if err := rootCmd.Execute(); err != nil {
		return 1, err
	}
	return lastTally.ExitCode(), nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "check-examples %s\n", Version)
	},
}

func init() {
	defaults := model.DefaultConfig()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+configName+".yaml)")
	rootCmd.PersistentFlags().StringVarP(&specDir, "spec-dir", "d", defaults.Spec.Dir, "Specification directory")
	rootCmd.PersistentFlags().StringVar(&specFile, "spec-file", defaults.Spec.File, "Specification file name inside the spec directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.Log.Level, "diagnostic log level (debug, info, warn, error)")

	// Check flags
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Be verbose, show error details")
	rootCmd.Flags().BoolVarP(&veryVerbose, "very-verbose", "V", false, "Be very verbose, show JSON for failures")
	rootCmd.Flags().StringSliceVar(&languages, "lang", defaults.Markdown.Languages, "fenced code language tags treated as JSON examples")
	rootCmd.Flags().StringSliceVar(&extensions, "markdown-ext", nil, "goldmark extensions to enable (gfm, table, footnote, ...)")
	rootCmd.Flags().BoolVar(&noFrontMatter, "no-front-matter", false, "do not strip a leading YAML front matter block")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable verdict memoization")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}
