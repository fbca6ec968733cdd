package query

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-api/internal/inventory/domain"
	"github.com/tair/inventory-api/internal/inventory/relquery"
)

// fakeRunner captures the validated query instead of hitting a database
type fakeRunner struct {
	got    relquery.Query
	result relquery.Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, q relquery.Query) (relquery.Result, error) {
	f.got = q
	return f.result, f.err
}

func TestGetRelatedBuildsQuery(t *testing.T) {
	runner := &fakeRunner{result: relquery.Result{SQL: "SELECT ..."}}
	handler := NewGetRelatedHandler(runner)

	params := url.Values{
		"join":            {"brand,stocks.warehouse"},
		"filter[product]": {"is_active=true"},
		"ordering":        {"-price"},
		"distinct":        {"true"},
		"limit":           {"25"},
	}

	result, err := handler.Handle(context.Background(), GetRelatedQuery{Root: "product", Params: params})
	require.NoError(t, err)

	q := runner.got
	assert.Equal(t, relquery.KindProduct, q.Root)
	require.Len(t, q.Plan.Eager, 1)
	require.Len(t, q.Plan.Batched, 1)
	require.Len(t, q.Predicates, 1)
	require.Len(t, q.Ordering, 1)
	assert.True(t, q.Ordering[0].Desc)
	assert.True(t, q.Distinct)
	assert.Equal(t, 25, q.Limit)

	assert.Equal(t, 0, result.Count)
	assert.Equal(t, "SELECT ...", result.SQL)
}

func TestGetRelatedDefaults(t *testing.T) {
	runner := &fakeRunner{}
	handler := NewGetRelatedHandler(runner)

	_, err := handler.Handle(context.Background(), GetRelatedQuery{Root: "order", Params: url.Values{}})
	require.NoError(t, err)

	q := runner.got
	assert.Equal(t, relquery.KindOrder, q.Root)
	assert.Empty(t, q.Plan.Eager)
	assert.Empty(t, q.Predicates)
	assert.False(t, q.Distinct)
	assert.Equal(t, -1, q.Limit)
}

func TestGetRelatedUnknownEntity(t *testing.T) {
	handler := NewGetRelatedHandler(&fakeRunner{})

	_, err := handler.Handle(context.Background(), GetRelatedQuery{Root: "invoice", Params: url.Values{}})
	assert.ErrorIs(t, err, relquery.ErrInvalidPath)
}

func TestGetRelatedInvalidJoin(t *testing.T) {
	handler := NewGetRelatedHandler(&fakeRunner{})

	params := url.Values{"join": {"bogus"}}
	_, err := handler.Handle(context.Background(), GetRelatedQuery{Root: "product", Params: params})
	assert.ErrorIs(t, err, relquery.ErrInvalidPath)
}

func TestGetRelatedInvalidLimitIgnored(t *testing.T) {
	runner := &fakeRunner{}
	handler := NewGetRelatedHandler(runner)

	params := url.Values{"limit": {"abc"}}
	_, err := handler.Handle(context.Background(), GetRelatedQuery{Root: "stock", Params: params})
	require.NoError(t, err)
	assert.Equal(t, -1, runner.got.Limit)

	params = url.Values{"limit": {"-5"}}
	_, err = handler.Handle(context.Background(), GetRelatedQuery{Root: "stock", Params: params})
	require.NoError(t, err)
	assert.Equal(t, -1, runner.got.Limit)
}

func TestGetRelatedProjectsRows(t *testing.T) {
	product := &domain.Product{Name: "Laptop", SKU: "LP-1"}
	runner := &fakeRunner{result: relquery.Result{Rows: []any{product}, SQL: "SELECT 1"}}
	handler := NewGetRelatedHandler(runner)

	params := url.Values{"fields[product]": {"name"}}
	result, err := handler.Handle(context.Background(), GetRelatedQuery{Root: "product", Params: params})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Results, 1)
	assert.Equal(t, map[string]any{"name": "Laptop"}, result.Results[0])
	assert.Equal(t, "SELECT 1", result.SQL)
}
