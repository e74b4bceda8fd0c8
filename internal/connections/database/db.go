package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"resto-pos/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connect opens a pgx-backed *sql.DB and waits for the database to come
// up, retrying with a short backoff.
func Connect(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	const maxRetries = 10
	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return db, nil
		}
		if attempt == maxRetries || ctx.Err() != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		select {
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		}
	}
}
