package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mirraashid/survey-response-service/internal/models"
)

// MongoStore persists submissions as one document per record in a single
// collection. The answers map goes in as-is; Mongo is a natural fit for the
// opaque-document contract.
type MongoStore struct {
	client    *mongo.Client
	responses *mongo.Collection
}

// NewMongoStore connects, pings the primary, and binds the target collection.
// Fails fast when the deployment is unreachable.
func NewMongoStore(uri, database, collection string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return &MongoStore{
		client:    client,
		responses: client.Database(database).Collection(collection),
	}, nil
}

// Ping is used by the readiness endpoint to validate connectivity.
func (m *MongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client with a bounded timeout.
func (m *MongoStore) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = m.client.Disconnect(ctx)
}

// Save inserts one document and returns the stored record. The id is a UUID
// generated here rather than an ObjectID so receipts look the same regardless
// of which backend is configured.
func (m *MongoStore) Save(
	ctx context.Context,
	surveyID string,
	answers map[string]interface{},
) (models.StoredResponse, error) {

	record := models.StoredResponse{
		ID:          uuid.New().String(),
		SurveyID:    surveyID,
		Data:        answers,
		SubmittedAt: time.Now().UTC(),
	}

	if _, err := m.responses.InsertOne(ctx, record); err != nil {
		return models.StoredResponse{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return record, nil
}
