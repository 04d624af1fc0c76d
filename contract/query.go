package contract

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rpupo63/editorial-backend/errs"
)

// ListArticlesQuery is the accepted input of GET /api/articles.
// A nil Limit means no limit was given.
type ListArticlesQuery struct {
	Category string `json:"category,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

func (q ListArticlesQuery) Validate() error {
	if q.Limit != nil && *q.Limit <= 0 {
		return errs.NewInvalidFieldError("limit", "must be a positive integer")
	}
	return nil
}

// MaxRows is the storage limit for the query, 0 meaning unlimited.
func (q ListArticlesQuery) MaxRows() int {
	if q.Limit == nil {
		return 0
	}
	return *q.Limit
}

// ParseListArticlesQuery reads category and limit from the query string.
// It only rejects values that are not integers; range checks belong to Validate.
func ParseListArticlesQuery(values url.Values) (ListArticlesQuery, error) {
	q := ListArticlesQuery{
		Category: strings.TrimSpace(values.Get("category")),
	}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return ListArticlesQuery{}, errs.NewInvalidFieldError("limit", "must be a positive integer")
		}
		q.Limit = &limit
	}

	return q, nil
}
