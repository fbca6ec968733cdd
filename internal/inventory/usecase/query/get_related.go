package query

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tair/inventory-api/internal/inventory/relquery"
)

// GetRelatedQuery represents the query for one related-data request:
// the root entity name from the URL plus the raw request parameters.
type GetRelatedQuery struct {
	Root   string
	Params url.Values
}

// RelatedResult is the handler-facing result of a related-data query
type RelatedResult struct {
	Count   int              `json:"count"`
	Results []map[string]any `json:"results"`
	SQL     string           `json:"query"`
}

// GetRelatedHandler handles related-data queries
type GetRelatedHandler struct {
	runner relquery.Runner
}

// NewGetRelatedHandler creates a new get related handler
func NewGetRelatedHandler(runner relquery.Runner) *GetRelatedHandler {
	return &GetRelatedHandler{runner: runner}
}

// Handle validates and executes a related-data query. Validation
// happens entirely before execution; any invalid join, filter field or
// lookup fails the whole request.
func (h *GetRelatedHandler) Handle(ctx context.Context, q GetRelatedQuery) (*RelatedResult, error) {
	root, ok := relquery.ParseKind(q.Root)
	if !ok {
		return nil, fmt.Errorf("%w: unknown entity %q", relquery.ErrInvalidPath, q.Root)
	}

	plan, err := relquery.PlanJoins(root, relquery.SplitList(q.Params.Get("join")))
	if err != nil {
		return nil, err
	}

	predicates, err := relquery.CompileFilters(root, q.Params)
	if err != nil {
		return nil, err
	}

	ordering, err := relquery.ParseOrdering(root, q.Params.Get("ordering"))
	if err != nil {
		return nil, err
	}

	result, err := h.runner.Run(ctx, relquery.Query{
		Root:       root,
		Plan:       plan,
		Predicates: predicates,
		Ordering:   ordering,
		Distinct:   parseDistinct(q.Params.Get("distinct")),
		Limit:      parseLimit(q.Params.Get("limit")),
	})
	if err != nil {
		return nil, err
	}

	results := relquery.Project(result.Rows, relquery.ParseFieldSets(q.Params))
	return &RelatedResult{
		Count:   len(results),
		Results: results,
		SQL:     result.SQL,
	}, nil
}

func parseDistinct(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true
	}
	return false
}

// parseLimit returns a negative value, meaning no limit, for anything
// that is not a non-negative integer.
func parseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return -1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return -1
	}
	return n
}
