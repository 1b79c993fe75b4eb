// Package pg bootstraps PostgreSQL access on top of github.com/jackc/pgx/v5.
//
// Config is populated from environment variables (see pkg/config). Connect
// opens a *pgxpool.Pool and retries until the database answers a ping.
// Migrate runs embedded github.com/pressly/goose/v3 migrations through the
// same pool, and Healthcheck plugs the pool into readiness checks.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, entity.Migrations, "migrations", log); err != nil {
//		return err
//	}
//
// Error helpers (IsNotFoundError, IsDuplicateKeyError) let
// repositories translate driver errors without importing pgconn.
package pg
