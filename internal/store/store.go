// Package store provides optional PostgreSQL persistence for search audit
// records. The scoring core never depends on it; when no database URL is
// configured the process runs fully in-memory.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// SearchAudit is one recorded ranking call.
type SearchAudit struct {
	ID            uuid.UUID
	RequiredSkill []string
	NiceToHave    []string
	Limit         int
	TopCandidates []string
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the audit table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS search_audits (
			id UUID PRIMARY KEY,
			required_skills TEXT[] NOT NULL,
			nice_to_have TEXT[] NOT NULL,
			result_limit INT NOT NULL,
			top_candidates TEXT[] NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure audit schema: %w", err)
	}
	return nil
}

// SaveSearch records one ranking call.
func (s *Store) SaveSearch(ctx context.Context, audit SearchAudit) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO search_audits (id, required_skills, nice_to_have, result_limit, top_candidates)
		 VALUES ($1, $2, $3, $4, $5)`,
		audit.ID, audit.RequiredSkill, audit.NiceToHave, audit.Limit, audit.TopCandidates,
	)
	if err != nil {
		return fmt.Errorf("failed to save search audit: %w", err)
	}
	return nil
}

// RecentSearches returns the most recent audits, newest first.
func (s *Store) RecentSearches(ctx context.Context, limit int) ([]SearchAudit, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, required_skills, nice_to_have, result_limit, top_candidates
		 FROM search_audits ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search audits: %w", err)
	}
	defer rows.Close()

	var audits []SearchAudit
	for rows.Next() {
		var audit SearchAudit
		if err := rows.Scan(&audit.ID, &audit.RequiredSkill, &audit.NiceToHave, &audit.Limit, &audit.TopCandidates); err != nil {
			return nil, fmt.Errorf("failed to scan search audit: %w", err)
		}
		audits = append(audits, audit)
	}
	return audits, rows.Err()
}
