package ports

import (
	"context"

	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
)

// TaskRepository is owner-scoped: every lookup and mutation matches on both
// the task id and the owner id, so a task belonging to another user is
// indistinguishable from a missing one.
type TaskRepository interface {
	Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	List(ctx context.Context, ownerID string, filter domain.ListFilter) ([]domain.Task, error)
	Get(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	Update(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	AddSubtask(ctx context.Context, ownerID, taskID, title string) (domain.Task, error)
	UpdateSubtask(ctx context.Context, ownerID, taskID, subtaskID string, completed bool) (domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, ownerID string, filter domain.ListFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) error
	AddSubtask(ctx context.Context, ownerID, taskID, title string) (domain.Task, error)
	UpdateSubtask(ctx context.Context, ownerID, taskID, subtaskID string, completed bool) (domain.Task, error)
}
