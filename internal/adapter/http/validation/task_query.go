package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
)

var ErrInvalidTaskQuery = errors.New("invalid task query")

// Sortable task fields; anything else in sortBy is rejected rather than
// handed to the store.
var sortableFields = map[string]struct{}{
	"title":     {},
	"createdAt": {},
	"completed": {},
	"category":  {},
}

func ParseListFilter(query url.Values) (domain.ListFilter, error) {
	var filter domain.ListFilter

	if value := query.Get("completed"); value != "" {
		completed, err := strconv.ParseBool(value)
		if err != nil {
			return domain.ListFilter{}, ErrInvalidTaskQuery
		}
		filter.Completed = &completed
	}

	if value := query.Get("category"); value != "" {
		filter.Category = value
	}

	if value := query.Get("tags"); value != "" {
		filter.Tags = normalizeTags(strings.Split(value, ","))
	}

	if value := query.Get("sortBy"); value != "" {
		if _, ok := sortableFields[value]; !ok {
			return domain.ListFilter{}, ErrInvalidTaskQuery
		}
		filter.SortBy = value
	}

	return filter, nil
}
