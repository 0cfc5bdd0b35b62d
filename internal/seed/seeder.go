package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/naija"
)

// personColumns matches the insertable columns of the persons table;
// created_at is left to its default.
var personColumns = []string{
	"id", "prefix", "first_name", "middle_name", "last_name", "full_name",
	"tribe", "gender", "degree", "school", "email", "phone_number", "state",
}

// Seeder generates coherent identities and bulk-inserts them.
type Seeder struct {
	pool  *pgxpool.Pool
	gen   *naija.Generator
	log   *slog.Logger
	batch int
}

// NewSeeder wires a generator and a pool together. A non-positive batch
// size falls back to 500.
func NewSeeder(pool *pgxpool.Pool, gen *naija.Generator, log *slog.Logger, batchSize int) *Seeder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Seeder{pool: pool, gen: gen, log: log, batch: batchSize}
}

// Run inserts total persons in CopyFrom batches and returns how many rows
// made it in. On a mid-run failure the count of already inserted rows is
// returned alongside the error.
func (s *Seeder) Run(ctx context.Context, total int) (int, error) {
	if total <= 0 {
		return 0, errors.Join(naija.ErrInvalidArgument, fmt.Errorf("seed count must be positive, got %d", total))
	}

	inserted := 0
	for inserted < total {
		n := min(s.batch, total-inserted)
		rows := make([][]any, 0, n)
		for range n {
			p, err := s.gen.Person(nil)
			if err != nil {
				return inserted, err
			}
			rows = append(rows, personRow(p))
		}

		copied, err := s.pool.CopyFrom(ctx, pgx.Identifier{"persons"}, personColumns, pgx.CopyFromRows(rows))
		if err != nil {
			return inserted, errors.Join(ErrCopy, err)
		}
		inserted += int(copied)
		s.log.InfoContext(ctx, "seeded batch",
			slog.Int("batch", int(copied)),
			slog.Int("inserted", inserted),
			slog.Int("total", total),
		)
	}
	return inserted, nil
}

func personRow(p *naija.Person) []any {
	return []any{
		p.ID, p.Prefix, p.FirstName, p.MiddleName, p.LastName, p.FullName,
		string(p.Tribe), string(p.Gender), p.Degree, p.School, p.Email,
		p.PhoneNumber, p.State,
	}
}
