package service

import (
	"context"

	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
	"github.com/santiagotraba/task-manager-backend/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, ownerID, input)
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string, filter domain.ListFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, ownerID, filter)
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	return s.taskRepository.Get(ctx, ownerID, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.Update(ctx, ownerID, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	return s.taskRepository.Delete(ctx, ownerID, taskID)
}

func (s *TaskService) AddSubtask(ctx context.Context, ownerID, taskID, title string) (domain.Task, error) {
	return s.taskRepository.AddSubtask(ctx, ownerID, taskID, title)
}

func (s *TaskService) UpdateSubtask(ctx context.Context, ownerID, taskID, subtaskID string, completed bool) (domain.Task, error) {
	return s.taskRepository.UpdateSubtask(ctx, ownerID, taskID, subtaskID, completed)
}

var _ ports.TaskService = (*TaskService)(nil)
