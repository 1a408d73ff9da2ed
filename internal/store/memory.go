package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mirraashid/survey-response-service/internal/models"
)

// MemoryStore keeps records in process memory. It backs the handler tests and
// the `memory` driver for dependency-free local runs; nothing survives a
// restart.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.StoredResponse
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends one record under the lock, so concurrent calls never corrupt
// or merge unrelated records.
func (m *MemoryStore) Save(
	_ context.Context,
	surveyID string,
	answers map[string]interface{},
) (models.StoredResponse, error) {

	record := models.StoredResponse{
		ID:          uuid.New().String(),
		SurveyID:    surveyID,
		Data:        answers,
		SubmittedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()

	return record, nil
}

// Ping always succeeds; memory is never unavailable.
func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() {}

// Records returns a copy of everything saved so far, in insertion order.
func (m *MemoryStore) Records() []models.StoredResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.StoredResponse, len(m.records))
	copy(out, m.records)
	return out
}
