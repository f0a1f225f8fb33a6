// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver. It offers a thin abstraction around connection pooling,
// health checks, and common error helpers so that services can bootstrap a
// resilient database layer with only a few lines of code.
//
// # Architecture
//
// The package exposes three cooperating building blocks:
//
//   - Config – a declarative struct whose fields are populated from
//     environment variables via github.com/caarlos0/env. It controls
//     connection pool limits and health-check cadence.
//
//   - Connect – opens a *pgxpool.Pool based on Config, retrying with
//     exponential back-off until the database becomes available.
//
//   - Healthcheck – wraps the pool's Ping in a func(context.Context) error
//     closure suitable for standard health check registries.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    panic(err)
//	}
//
//	ctx := context.Background()
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
// # Error Handling
//
// Convenience helpers such as [IsDuplicateKeyError] or
// [IsForeignKeyViolationError] unwrap errors returned by pgx/
// `*pgconn.PgError` and make error classification trivial inside business
// logic.
package pg
