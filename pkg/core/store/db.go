package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store owns the database connection pool. It is constructed once at
// process start, handed to the repositories that need it, and closed at
// shutdown.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to the database described by dbURL.
func Open(ctx context.Context, dbURL string) (*Store, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &Store{pool: pool}, nil
}

// EnsureSchema creates the news_analysis table if it does not exist.
// Company and key-point lists are JSONB so the trending aggregation can
// fan them out with jsonb_array_elements_text.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS news_analysis (
			id UUID PRIMARY KEY,
			headline TEXT NOT NULL,
			content TEXT NOT NULL,
			source TEXT NOT NULL,
			url TEXT,
			published_date TIMESTAMPTZ NOT NULL,
			mentioned_companies JSONB NOT NULL DEFAULT '[]',
			sentiment_score DOUBLE PRECISION NOT NULL,
			sentiment_label TEXT NOT NULL,
			impact_score DOUBLE PRECISION NOT NULL,
			key_points JSONB NOT NULL DEFAULT '[]',
			analysis_timestamp TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_news_analysis_ts ON news_analysis (analysis_timestamp DESC);
	`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Pool exposes the underlying connection pool to repositories.
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

// Close closes the database connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
