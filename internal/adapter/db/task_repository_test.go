package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
)

func TestBuildListQuery_AlwaysScopedToOwner(t *testing.T) {
	owner := primitive.NewObjectID()

	query := buildListQuery(owner, domain.ListFilter{})
	require.Equal(t, bson.M{"userId": owner}, query)
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	owner := primitive.NewObjectID()
	completed := true

	query := buildListQuery(owner, domain.ListFilter{
		Completed: &completed,
		Category:  "work",
		Tags:      []string{"urgent", "home"},
	})

	require.Equal(t, bson.M{
		"userId":    owner,
		"completed": true,
		"category":  "work",
		"tags":      bson.M{"$in": []string{"urgent", "home"}},
	}, query)
}

func TestBuildListQuery_CompletedFalseIsNotDropped(t *testing.T) {
	owner := primitive.NewObjectID()
	completed := false

	query := buildListQuery(owner, domain.ListFilter{Completed: &completed})
	require.Equal(t, false, query["completed"])
}

func TestBuildListOptions_Sort(t *testing.T) {
	opts := buildListOptions(domain.ListFilter{SortBy: "createdAt"})
	require.Equal(t, bson.D{{Key: "createdAt", Value: 1}}, opts.Sort)

	opts = buildListOptions(domain.ListFilter{})
	require.Nil(t, opts.Sort)
}

func TestOwnerTaskQuery(t *testing.T) {
	owner := primitive.NewObjectID()
	task := primitive.NewObjectID()

	query, err := ownerTaskQuery(owner.Hex(), task.Hex())
	require.NoError(t, err)
	require.Equal(t, bson.M{"_id": task, "userId": owner}, query)
}

func TestOwnerTaskQuery_MalformedTaskID(t *testing.T) {
	owner := primitive.NewObjectID()

	// Garbage in the URL matches no document, so it reads as not-found.
	_, err := ownerTaskQuery(owner.Hex(), "not-an-object-id")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestMapTaskDocument(t *testing.T) {
	owner := primitive.NewObjectID()
	id := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	createdAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	task := mapTaskDocument(taskDocument{
		ID:          id,
		Title:       "Buy milk",
		Description: "2%",
		Category:    "errands",
		Tags:        []string{"shopping"},
		Subtasks: []subtaskDocument{
			{ID: subID, Title: "pick 2% brand", Completed: true},
		},
		CreatedAt: createdAt,
		UserID:    owner,
	})

	require.Equal(t, id.Hex(), task.ID)
	require.Equal(t, "Buy milk", task.Title)
	require.Equal(t, "2%", task.Description)
	require.False(t, task.Completed)
	require.Equal(t, "errands", task.Category)
	require.Equal(t, []string{"shopping"}, task.Tags)
	require.Equal(t, createdAt, task.CreatedAt)
	require.Equal(t, owner.Hex(), task.OwnerID)
	require.Len(t, task.Subtasks, 1)
	require.Equal(t, subID.Hex(), task.Subtasks[0].ID)
	require.Equal(t, "pick 2% brand", task.Subtasks[0].Title)
	require.True(t, task.Subtasks[0].Completed)
}

func TestMapTaskDocument_EmptySubtasks(t *testing.T) {
	task := mapTaskDocument(taskDocument{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
	})

	require.NotNil(t, task.Subtasks)
	require.Empty(t, task.Subtasks)
}
