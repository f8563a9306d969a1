package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
	"github.com/santiagotraba/task-manager-backend/internal/core/ports"
)

type subtaskDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Completed bool               `bson:"completed"`
}

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
	Category    string             `bson:"category,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	Subtasks    []subtaskDocument  `bson:"subtasks"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UserID      primitive.ObjectID `bson:"userId"`
}

type TaskRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: database.Collection("tasks"), now: time.Now}
}

func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}

func (r *TaskRepository) Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	doc := taskDocument{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Tags:        input.Tags,
		Subtasks:    []subtaskDocument{},
		CreatedAt:   r.now().UTC(),
		UserID:      owner,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return domain.Task{}, err
	}

	return mapTaskDocument(doc), nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID string, filter domain.ListFilter) ([]domain.Task, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, err
	}

	cursor, err := r.collection.Find(ctx, buildListQuery(owner, filter), buildListOptions(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocument(doc))
	}

	return tasks, nil
}

func (r *TaskRepository) Get(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	filter, err := ownerTaskQuery(ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	var doc taskDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocument(doc), nil
}

func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Completed != nil {
		set["completed"] = *input.Completed
	}
	if len(set) == 0 {
		// Nothing to change, but the caller still gets the current state.
		return r.Get(ctx, ownerID, taskID)
	}

	filter, err := ownerTaskQuery(ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	return r.findOneAndUpdate(ctx, filter, bson.M{"$set": set})
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	filter, err := ownerTaskQuery(ownerID, taskID)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) AddSubtask(ctx context.Context, ownerID, taskID, title string) (domain.Task, error) {
	filter, err := ownerTaskQuery(ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	sub := subtaskDocument{ID: primitive.NewObjectID(), Title: title}
	return r.findOneAndUpdate(ctx, filter, bson.M{"$push": bson.M{"subtasks": sub}})
}

func (r *TaskRepository) UpdateSubtask(ctx context.Context, ownerID, taskID, subtaskID string, completed bool) (domain.Task, error) {
	filter, err := ownerTaskQuery(ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	subID, err := primitive.ObjectIDFromHex(subtaskID)
	if err != nil {
		// Still report task-not-found first if the task itself is missing.
		if _, getErr := r.Get(ctx, ownerID, taskID); getErr != nil {
			return domain.Task{}, getErr
		}
		return domain.Task{}, domain.ErrSubtaskNotFound
	}

	withSub := bson.M{}
	for key, value := range filter {
		withSub[key] = value
	}
	withSub["subtasks._id"] = subID

	task, err := r.findOneAndUpdate(ctx, withSub, bson.M{"$set": bson.M{"subtasks.$.completed": completed}})
	if errors.Is(err, domain.ErrTaskNotFound) {
		// The combined filter missed; check the task alone to tell the two
		// not-found cases apart.
		if _, getErr := r.Get(ctx, ownerID, taskID); getErr != nil {
			return domain.Task{}, getErr
		}
		return domain.Task{}, domain.ErrSubtaskNotFound
	}

	return task, err
}

func (r *TaskRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (domain.Task, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocument(doc), nil
}

// ownerTaskQuery matches a task only when both the id and the owner line up.
// A malformed task id cannot match any document, so it reports not-found
// rather than a decoding error.
func ownerTaskQuery(ownerID, taskID string) (bson.M, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	return bson.M{"_id": id, "userId": owner}, nil
}

func buildListQuery(owner primitive.ObjectID, filter domain.ListFilter) bson.M {
	query := bson.M{"userId": owner}

	if filter.Completed != nil {
		query["completed"] = *filter.Completed
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}

	return query
}

func buildListOptions(filter domain.ListFilter) *options.FindOptions {
	opts := options.Find()
	if filter.SortBy != "" {
		opts.SetSort(bson.D{{Key: filter.SortBy, Value: 1}})
	}
	return opts
}

func mapTaskDocument(doc taskDocument) domain.Task {
	task := domain.Task{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Completed:   doc.Completed,
		Category:    doc.Category,
		Tags:        doc.Tags,
		Subtasks:    make([]domain.Subtask, 0, len(doc.Subtasks)),
		CreatedAt:   doc.CreatedAt,
		OwnerID:     doc.UserID.Hex(),
	}

	for _, sub := range doc.Subtasks {
		task.Subtasks = append(task.Subtasks, domain.Subtask{
			ID:        sub.ID.Hex(),
			Title:     sub.Title,
			Completed: sub.Completed,
		})
	}

	return task
}
