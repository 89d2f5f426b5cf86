package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// un solo usuario, pocas conexiones alcanzan
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// position conserva el orden de alta; id no es único (las colisiones se aceptan).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS cats (
		position   BIGSERIAL PRIMARY KEY,
		id         TEXT NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		age        TEXT NOT NULL DEFAULT '',
		gender     TEXT NOT NULL DEFAULT 'Male',
		color      TEXT NOT NULL DEFAULT '',
		mother     TEXT NOT NULL DEFAULT '',
		father     TEXT NOT NULL DEFAULT '',
		breed      TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		vaccinated TEXT NOT NULL DEFAULT 'No'
	)`,
	`CREATE INDEX IF NOT EXISTS cats_id_idx ON cats (id)`,
	`CREATE TABLE IF NOT EXISTS cat_activity (
		id          UUID PRIMARY KEY,
		type        TEXT NOT NULL,
		cat_id      TEXT NOT NULL,
		previous_id TEXT NOT NULL DEFAULT '',
		source      TEXT NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS cat_activity_recorded_at_idx ON cat_activity (recorded_at DESC)`,
}

// EnsureSchema crea las tablas si faltan.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: ensure schema: %w", err)
		}
	}
	return nil
}
