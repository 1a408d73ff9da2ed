package store

import (
	"context"
	"errors"

	"github.com/mirraashid/survey-response-service/internal/models"
)

// ErrUnavailable is returned when the underlying medium cannot be reached or
// the write cannot be durably committed. Callers may retry with backoff; the
// store itself never retries.
var ErrUnavailable = errors.New("storage unavailable")

// Store is the durable, append-only persistence layer for submissions.
// It is constructed once at process start and injected into the HTTP layer,
// which keeps handlers testable against an in-memory substitute.
type Store interface {
	// Save assigns an id and submittedAt, writes the record, and returns it.
	// Safe for concurrent use; each call produces one independent record.
	Save(ctx context.Context, surveyID string, answers map[string]interface{}) (models.StoredResponse, error)

	// Ping is used by the readiness endpoint to validate connectivity.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close()
}
