package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/santiagotraba/task-manager-backend/internal/adapter/http/dto"
	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// FieldError names a single rejected request field; create responses carry a
// list of these under an "errors" key.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, []FieldError) {
	var fieldErrors []FieldError

	title := strings.TrimSpace(req.Title)
	if title == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "title", Message: "Title is required"})
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "description", Message: "Description is required"})
	}

	if len(fieldErrors) > 0 {
		return domain.CreateTaskInput{}, fieldErrors
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: description,
		Category:    strings.TrimSpace(req.Category),
		Tags:        normalizeTags(req.Tags),
	}, nil
}

// BuildUpdateTaskInput distinguishes absent fields from fields explicitly set
// to null or empty: absent means keep the stored value, while null or a blank
// required string is rejected.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title := strings.TrimSpace(*req.Title)
		input.Title = &title
	}

	if hasJSONField(raw, "description") {
		if req.Description == nil || strings.TrimSpace(*req.Description) == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		description := strings.TrimSpace(*req.Description)
		input.Description = &description
	}

	if hasJSONField(raw, "completed") {
		if req.Completed == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Completed = req.Completed
	}

	return input, nil
}

func BuildAddSubtaskTitle(req dto.AddSubtaskRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", ErrInvalidTaskPayload
	}
	return title, nil
}

func BuildSubtaskCompleted(req dto.UpdateSubtaskRequest) (bool, error) {
	if req.Completed == nil {
		return false, ErrInvalidTaskPayload
	}
	return *req.Completed, nil
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	if len(normalized) == 0 {
		return nil
	}

	return normalized
}

// An explicit null counts as present; the per-field checks reject it.
func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
