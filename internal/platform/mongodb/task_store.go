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

// tasksCollection is the collection holding extraction task documents.
const tasksCollection = "tasks"

// MongoTaskStore implements the store.TaskStore interface
// using a MongoDB collection as the storage backend.
type MongoTaskStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoTaskStore creates a new MongoDB implementation of the TaskStore interface.
// It accepts a database handle that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewMongoTaskStore(db *mongo.Database, logger *slog.Logger) *MongoTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoTaskStore{
		coll:   db.Collection(tasksCollection),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure MongoTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MongoTaskStore)(nil)

// Create implements store.TaskStore.Create
// It inserts a new task document, handling domain validation.
// Returns store.ErrInsertNotAcknowledged if the insert reports no new record.
func (s *MongoTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return err
	}

	result, err := s.coll.InsertOne(ctx, task)
	if err != nil {
		log.Error("failed to insert task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return store.NewStoreError("task", "create", "insert failed", err)
	}

	if result.InsertedID == nil {
		log.Error("task insert not acknowledged",
			slog.String("task_id", task.ID))
		return store.ErrInsertNotAcknowledged
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID),
		slog.String("file_type", task.FileType))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// It retrieves a task by its application-assigned identifier.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *MongoTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.String("task_id", id))

	var task domain.Task
	err := s.coll.FindOne(ctx, bson.M{"task_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("task not found", slog.String("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id))
		return nil, store.NewStoreError("task", "get", "lookup failed", err)
	}

	log.Debug("task retrieved successfully",
		slog.String("task_id", id),
		slog.String("task_status", string(task.Status)))
	return &task, nil
}

// SetResult implements store.TaskStore.SetResult
// It records the task's single terminal transition by merge-patching the
// status and outcome payload together. The update filter only matches
// tasks still in the processing state, so a task that already reached a
// terminal state is never transitioned again; the document-level atomicity
// of the update is the only synchronization required.
func (s *MongoTaskStore) SetResult(
	ctx context.Context,
	id string,
	status domain.TaskStatus,
	result *domain.ExtractionResult,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !status.IsTerminal() {
		log.Warn("rejected non-terminal result status",
			slog.String("task_id", id),
			slog.String("task_status", string(status)))
		return domain.ErrInvalidTaskStatus
	}

	filter := bson.M{
		"task_id":     id,
		"task_status": domain.TaskStatusProcessing,
	}
	update := bson.M{"$set": bson.M{
		"task_status":  status,
		"extract_data": result,
	}}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error("failed to record task result",
			slog.String("error", err.Error()),
			slog.String("task_id", id),
			slog.String("task_status", string(status)))
		return store.NewStoreError("task", "set_result", "merge-patch failed", err)
	}

	if res.MatchedCount == 0 {
		// Distinguish an absent task from one that already finished.
		if _, getErr := s.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		log.Warn("task already reached a terminal state",
			slog.String("task_id", id),
			slog.String("task_status", string(status)))
		return store.ErrTaskAlreadyFinished
	}

	log.Info("task result recorded",
		slog.String("task_id", id),
		slog.String("task_status", string(status)))
	return nil
}
