package seed

import "errors"

var (
	ErrEmptyDatabaseURL = errors.New("empty postgres connection string, use DATABASE_URL env var")
	ErrParseConfig      = errors.New("failed to parse db config")
	ErrConnect          = errors.New("failed to open db connection")
	ErrMigrate          = errors.New("failed to apply migrations")
	ErrCopy             = errors.New("failed to bulk insert persons")
)
