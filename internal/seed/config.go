package seed

import "time"

// Config carries the database settings for the seeding commands.
type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL,required"`               // DatabaseURL is the Postgres connection string.
	MaxConns      int32         `env:"SEED_MAX_CONNS" envDefault:"4"`       // MaxConns caps the pool size; seeding needs few connections.
	RetryAttempts int           `env:"SEED_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval time.Duration `env:"SEED_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the base wait between attempts, growing linearly.
	BatchSize     int           `env:"SEED_BATCH_SIZE" envDefault:"500"`    // BatchSize is the number of rows per CopyFrom round trip.
}
