package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naija/internal/seed"
)

var flagSeedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed a Postgres database with generated persons",
	Long: `Connect to Postgres, run the schema migrations and bulk-insert generated
persons into the persons table. DATABASE_URL must be set; SEED_MAX_CONNS,
SEED_RETRY_ATTEMPTS, SEED_RETRY_INTERVAL and SEED_BATCH_SIZE tune the run.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cfg seed.Config
		if err := loadConfig(&cfg); err != nil {
			return err
		}

		gen, err := newGenerator()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pool, err := seed.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := seed.Migrate(ctx, pool, log); err != nil {
			return err
		}

		seeder := seed.NewSeeder(pool, gen, log, cfg.BatchSize)
		inserted, err := seeder.Run(ctx, flagSeedCount)
		if err != nil {
			return err
		}
		log.Info("seeding complete", "inserted", inserted)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&flagSeedCount, "count", 1000, "number of persons to insert")

	rootCmd.AddCommand(seedCmd)
}
