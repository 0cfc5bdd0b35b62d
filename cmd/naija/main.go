package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naija"
)

var (
	flagRepeat   int
	flagSeed     int64
	flagDataDir  string
	flagLogLevel string
	flagJSONLog  bool

	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "naija",
	Short: "Generate realistic Nigeria-flavored data",
	Long: `naija generates randomized Nigerian names, emails, phone numbers,
schools, states, prices and complete identities for seeding databases and
building demos. Values within one run do not repeat until their pool is
exhausted.

Generated data goes to stdout, one value per line; diagnostics go to
stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if flagRepeat < 1 || flagRepeat > 100 {
			return fmt.Errorf("--repeat must be between 1 and 100, got %d", flagRepeat)
		}
		var err error
		if log, err = newLogger(flagLogLevel, flagJSONLog); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagRepeat, "repeat", "r", 1, "number of values to generate (1-100)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "seed for reproducible output (0 picks a random seed)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory with replacement datasets (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLog, "json", false, "write logs as JSON")
}

// newGenerator builds a generator honoring the persistent flags.
func newGenerator() (*naija.Generator, error) {
	var opts []naija.Option
	if flagSeed != 0 {
		opts = append(opts, naija.WithSeed(flagSeed))
	}
	if flagDataDir != "" {
		opts = append(opts, naija.WithDataDir(flagDataDir))
	}
	return naija.New(opts...)
}

// runRepeat wraps a single-value draw into a RunE that prints it --repeat
// times, one value per line.
func runRepeat(draw func(g *naija.Generator) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		gen, err := newGenerator()
		if err != nil {
			return err
		}
		for range flagRepeat {
			v, err := draw(gen)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Filters that match nothing exit with a distinct code so
		// scripts can tell bad filters from real failures.
		if errors.Is(err, naija.ErrEmptyPool) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
