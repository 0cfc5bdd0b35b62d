// Package seed fills a Postgres database with generated identities. It
// owns the connection bootstrap with retries, the goose migrations for the
// persons table, and a batched CopyFrom inserter.
package seed
