package mapper

import (
	"time"

	"github.com/santiagotraba/task-manager-backend/internal/adapter/http/dto"
	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Category:    task.Category,
		Tags:        task.Tags,
		// Subtasks serialize as [] rather than null when empty.
		Subtasks:  make([]dto.SubtaskItem, 0, len(task.Subtasks)),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}

	for _, sub := range task.Subtasks {
		item.Subtasks = append(item.Subtasks, dto.SubtaskItem{
			ID:        sub.ID,
			Title:     sub.Title,
			Completed: sub.Completed,
		})
	}

	return item
}
