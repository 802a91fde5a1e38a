package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/platform/logger"
	"github.com/takshila/paperbank-api/internal/store"
)

// papersCollection is the collection holding paper documents.
const papersCollection = "papers"

// MongoPaperStore implements the store.PaperStore interface
// using a MongoDB collection as the storage backend.
type MongoPaperStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoPaperStore creates a new MongoDB implementation of the PaperStore interface.
// It accepts a database handle that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewMongoPaperStore(db *mongo.Database, logger *slog.Logger) *MongoPaperStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoPaperStore{
		coll:   db.Collection(papersCollection),
		logger: logger.With(slog.String("component", "paper_store")),
	}
}

// Ensure MongoPaperStore implements store.PaperStore interface
var _ store.PaperStore = (*MongoPaperStore)(nil)

// Create implements store.PaperStore.Create
// It inserts a new paper document, handling domain validation.
// Returns store.ErrInsertNotAcknowledged if the insert reports no new record.
func (s *MongoPaperStore) Create(ctx context.Context, paper *domain.Paper) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := paper.Validate(); err != nil {
		log.Warn("paper validation failed during create",
			slog.String("error", err.Error()),
			slog.String("paper_id", paper.ID))
		return err
	}

	result, err := s.coll.InsertOne(ctx, paper)
	if err != nil {
		log.Error("failed to insert paper",
			slog.String("error", err.Error()),
			slog.String("paper_id", paper.ID))
		return store.NewStoreError("paper", "create", "insert failed", err)
	}

	if result.InsertedID == nil {
		log.Error("paper insert not acknowledged",
			slog.String("paper_id", paper.ID))
		return store.ErrInsertNotAcknowledged
	}

	log.Info("paper created successfully",
		slog.String("paper_id", paper.ID))
	return nil
}

// GetByID implements store.PaperStore.GetByID
// It retrieves a paper by its application-assigned identifier.
// Returns store.ErrPaperNotFound if the paper does not exist.
func (s *MongoPaperStore) GetByID(ctx context.Context, id string) (*domain.Paper, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving paper by ID", slog.String("paper_id", id))

	var paper domain.Paper
	err := s.coll.FindOne(ctx, bson.M{"paper_id": id}).Decode(&paper)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("paper not found", slog.String("paper_id", id))
			return nil, store.ErrPaperNotFound
		}
		log.Error("failed to get paper by ID",
			slog.String("error", err.Error()),
			slog.String("paper_id", id))
		return nil, store.NewStoreError("paper", "get", "lookup failed", err)
	}

	log.Debug("paper retrieved successfully", slog.String("paper_id", id))
	return &paper, nil
}

// Update implements store.PaperStore.Update
// It merge-patches the named fields into an existing paper document. The
// caller validates the merged record before calling Update.
// Returns store.ErrPaperNotFound if the paper does not exist.
func (s *MongoPaperStore) Update(ctx context.Context, id string, fields map[string]any) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("updating paper",
		slog.String("paper_id", id),
		slog.Int("field_count", len(fields)))

	set := bson.M{}
	for field, value := range fields {
		set[field] = value
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"paper_id": id}, bson.M{"$set": set})
	if err != nil {
		log.Error("failed to update paper",
			slog.String("error", err.Error()),
			slog.String("paper_id", id))
		return store.NewStoreError("paper", "update", "merge-patch failed", err)
	}

	if result.MatchedCount == 0 {
		log.Debug("paper not found for update", slog.String("paper_id", id))
		return store.ErrPaperNotFound
	}

	log.Info("paper updated successfully",
		slog.String("paper_id", id),
		slog.Int("field_count", len(fields)))
	return nil
}

// Delete implements store.PaperStore.Delete
// It removes a paper by its identifier.
// Returns store.ErrPaperNotFound if no record was removed.
func (s *MongoPaperStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.coll.DeleteOne(ctx, bson.M{"paper_id": id})
	if err != nil {
		log.Error("failed to delete paper",
			slog.String("error", err.Error()),
			slog.String("paper_id", id))
		return store.NewStoreError("paper", "delete", "delete failed", err)
	}

	if result.DeletedCount == 0 {
		log.Debug("paper not found for delete", slog.String("paper_id", id))
		return store.ErrPaperNotFound
	}

	log.Info("paper deleted successfully", slog.String("paper_id", id))
	return nil
}
