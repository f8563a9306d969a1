package domain

import "time"

type Subtask struct {
	ID        string
	Title     string
	Completed bool
}

type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Category    string
	Tags        []string
	Subtasks    []Subtask
	CreatedAt   time.Time
	OwnerID     string
}

type CreateTaskInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
}

// UpdateTaskInput carries only the fields the caller supplied; nil means
// leave the stored value untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// ListFilter restricts ListTasks results. All supplied filters must match;
// Tags matches tasks sharing at least one tag. SortBy, when set, names the
// task field to sort ascending by.
type ListFilter struct {
	Completed *bool
	Category  string
	Tags      []string
	SortBy    string
}
