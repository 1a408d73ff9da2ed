package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirraashid/survey-response-service/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// PostgresStore persists submissions in a Postgres table with the answers
// held in a JSONB column, keeping the payload opaque to the database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return err
}

// Ping is used by the readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// Save writes one submission row and returns the stored record.
//
// The id and timestamp are generated inside the INSERT so record creation is
// atomic: either the full row exists with its identity, or nothing does.
func (p *PostgresStore) Save(
	ctx context.Context,
	surveyID string,
	answers map[string]interface{},
) (models.StoredResponse, error) {

	dataJSON, err := json.Marshal(answers)
	if err != nil {
		return models.StoredResponse{}, err
	}

	var (
		id          string
		submittedAt time.Time
	)
	err = p.pool.QueryRow(ctx, `
		INSERT INTO responses(survey_id, data)
		VALUES ($1, $2)
		RETURNING id::text, submitted_at
	`, surveyID, dataJSON).Scan(&id, &submittedAt)

	if err != nil {
		return models.StoredResponse{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return models.StoredResponse{
		ID:          id,
		SurveyID:    surveyID,
		Data:        answers,
		SubmittedAt: submittedAt.UTC(),
	}, nil
}
