// Package interactions persists the append-only model interaction log used
// for audit and cost accounting.
package interactions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// Store writes interaction records to Postgres. Rows are append-only and
// never mutated.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append inserts one interaction record.
func (s *Store) Append(ctx context.Context, rec models.InteractionRecord) error {
	const q = `
	INSERT INTO model_interactions (
		id, user_id, concept_id, operation_kind, prompt_text, response_text,
		tokens_used, created_at, duration_ms
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var conceptID interface{}
	if rec.ConceptID != nil {
		conceptID = *rec.ConceptID
	}

	log.Debug().
		Str("id", rec.ID).
		Str("operation_kind", string(rec.Kind)).
		Int("tokens_used", rec.TokensUsed).
		Msg("appending interaction record")

	_, err := s.db.ExecContext(ctx, q,
		rec.ID, rec.UserID, conceptID, string(rec.Kind), rec.PromptText,
		rec.ResponseText, rec.TokensUsed, rec.CreatedAt, rec.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("failed to append interaction record: %w", err)
	}
	return nil
}

// TotalTokens sums the token cost of all recorded calls for a user.
func (s *Store) TotalTokens(ctx context.Context, userID string) (int64, error) {
	const q = `SELECT COALESCE(SUM(tokens_used), 0) FROM model_interactions WHERE user_id = $1`

	var total int64
	if err := s.db.QueryRowContext(ctx, q, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum tokens for user %s: %w", userID, err)
	}
	return total, nil
}

// ListByConcept returns all records for one concept, newest first.
func (s *Store) ListByConcept(ctx context.Context, conceptID string) ([]models.InteractionRecord, error) {
	const q = `
	SELECT id, user_id, concept_id, operation_kind, prompt_text, response_text,
	       tokens_used, created_at, duration_ms
	FROM model_interactions
	WHERE concept_id = $1
	ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, q, conceptID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	defer rows.Close()

	var out []models.InteractionRecord
	for rows.Next() {
		var rec models.InteractionRecord
		var concept sql.NullString
		var kind string
		if err := rows.Scan(&rec.ID, &rec.UserID, &concept, &kind, &rec.PromptText,
			&rec.ResponseText, &rec.TokensUsed, &rec.CreatedAt, &rec.DurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan interaction row: %w", err)
		}
		if concept.Valid {
			rec.ConceptID = &concept.String
		}
		rec.Kind = models.OperationKind(kind)
		out = append(out, rec)
	}
	return out, rows.Err()
}
