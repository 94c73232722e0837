package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
)

// ErrPortfolioNotFound is returned when a user has no stored portfolio yet.
// The service layer treats it as the first-visit signal and seeds a fresh one.
var ErrPortfolioNotFound = errors.New("portfolio not found")

// Repository defines the interface for portfolio storage.
type Repository interface {
	LoadPortfolio(ctx context.Context, userID string) (models.PortfolioState, error)
	SavePortfolio(ctx context.Context, state models.PortfolioState) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "portfolios",
	}, nil
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// LoadPortfolio fetches the stored portfolio document for one user.
func (r *MongoDBRepository) LoadPortfolio(ctx context.Context, userID string) (models.PortfolioState, error) {
	var state models.PortfolioState
	err := r.collection().FindOne(ctx, bson.M{"_id": userID}).Decode(&state)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.PortfolioState{}, ErrPortfolioNotFound
	}
	if err != nil {
		return models.PortfolioState{}, fmt.Errorf("failed to load portfolio for %s: %w", userID, err)
	}
	return state, nil
}

// SavePortfolio upserts the full portfolio document for its user.
func (r *MongoDBRepository) SavePortfolio(ctx context.Context, state models.PortfolioState) error {
	state.UpdatedAt = time.Now().UTC()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection().ReplaceOne(ctx, bson.M{"_id": state.UserID}, state, opts); err != nil {
		return fmt.Errorf("failed to save portfolio for %s: %w", state.UserID, err)
	}
	return nil
}

// ListUserIDs returns the ids of every user with a stored portfolio. Used by
// the monthly rollover job.
func (r *MongoDBRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	cursor, err := r.collection().Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode portfolio id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error listing portfolios: %w", err)
	}
	return ids, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
