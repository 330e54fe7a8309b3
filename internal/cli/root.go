// Package cli provides the command-line interface for the sqlcases
// fixture tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlcases/internal/config"
	"github.com/leapstack-labs/sqlcases/pkg/corpus"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlcases",
		Short: "SQL test-case corpus inspector",
		Long: `sqlcases loads the SQL test-fixture corpora (supported and unsupported
cases), resolves case templates into concrete SQL, and expands the
parameterized test matrix, using the same code paths as the test runner.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}} (%s)
`, GitCommit))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: sqlcases.yaml)")
	flags.String("fixtures-dir", config.DefaultFixturesDir, "root of the fixture tree")
	flags.String("output", config.DefaultOutput, "output format: table, json")
	flags.BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newListCommand(),
		newSQLCommand(),
		newMatrixCommand(),
		newLintCommand(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLoader builds a corpus loader from the effective configuration.
func newLoader() *corpus.Loader {
	return corpus.NewLoader(cfg.FixturesDir, corpus.WithLogger(slog.Default()))
}
