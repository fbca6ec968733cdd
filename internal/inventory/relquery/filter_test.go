package relquery

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, CoerceValue("true"))
	assert.Equal(t, true, CoerceValue("True"))
	assert.Equal(t, false, CoerceValue("FALSE"))
	assert.Equal(t, 42, CoerceValue("42"))
	assert.Equal(t, "042abc", CoerceValue("042abc"))
	assert.Equal(t, "-5", CoerceValue("-5"))
	assert.Equal(t, "3.14", CoerceValue("3.14"))
	assert.Equal(t, "hello", CoerceValue("hello"))
	assert.Equal(t, "", CoerceValue(""))
}

func TestCompileFiltersRootEntity(t *testing.T) {
	params := url.Values{"filter[product]": {"is_active=true,price__gte=100"}}

	predicates, err := CompileFilters(KindProduct, params)
	require.NoError(t, err)
	require.Len(t, predicates, 2)

	byField := map[string]Predicate{}
	for _, p := range predicates {
		byField[p.Field] = p
	}

	active := byField["is_active"]
	assert.Empty(t, active.Path.Hops)
	assert.Equal(t, KindProduct, active.Kind)
	assert.Equal(t, "", active.Lookup)
	assert.Equal(t, true, active.Value)

	price := byField["price"]
	assert.Equal(t, "gte", price.Lookup)
	assert.Equal(t, 100, price.Value)
}

func TestCompileFiltersRelatedEntity(t *testing.T) {
	params := url.Values{"filter[warehouse]": {"city=Ankara"}}

	predicates, err := CompileFilters(KindProduct, params)
	require.NoError(t, err)
	require.Len(t, predicates, 1)

	p := predicates[0]
	assert.Equal(t, KindWarehouse, p.Kind)
	assert.Equal(t, "city", p.Column)
	assert.Equal(t, "Ankara", p.Value)
	require.Len(t, p.Path.Hops, 2) // stocks -> warehouse
}

func TestCompileFiltersSkipsMalformedClause(t *testing.T) {
	params := url.Values{"filter[product]": {"noequalsign,name=Laptop"}}

	predicates, err := CompileFilters(KindProduct, params)
	require.NoError(t, err)
	require.Len(t, predicates, 1)
	assert.Equal(t, "name", predicates[0].Field)
}

func TestCompileFiltersIgnoresNonFilterParams(t *testing.T) {
	params := url.Values{
		"join":            {"brand"},
		"fields[product]": {"name"},
		"ordering":        {"-price"},
	}

	predicates, err := CompileFilters(KindProduct, params)
	require.NoError(t, err)
	assert.Empty(t, predicates)
}

func TestCompileFiltersUnknownField(t *testing.T) {
	params := url.Values{"filter[product]": {"color=red"}}

	_, err := CompileFilters(KindProduct, params)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCompileFiltersUnknownLookup(t *testing.T) {
	params := url.Values{"filter[product]": {"price__regex=abc"}}

	_, err := CompileFilters(KindProduct, params)
	assert.ErrorIs(t, err, ErrUnknownLookup)
}

func TestCompileFiltersUnresolvableEntity(t *testing.T) {
	params := url.Values{"filter[bogus]": {"name=x"}}

	_, err := CompileFilters(KindProduct, params)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestCompileFiltersValueContainingEquals(t *testing.T) {
	// Only the first "=" splits field from value.
	params := url.Values{"filter[customer]": {"email=a=b@example.com"}}

	predicates, err := CompileFilters(KindCustomer, params)
	require.NoError(t, err)
	require.Len(t, predicates, 1)
	assert.Equal(t, "a=b@example.com", predicates[0].Value)
}

func TestSplitLookup(t *testing.T) {
	field, lookup := splitLookup("price__gte")
	assert.Equal(t, "price", field)
	assert.Equal(t, "gte", lookup)

	field, lookup = splitLookup("name")
	assert.Equal(t, "name", field)
	assert.Equal(t, "", lookup)
}

func TestBracketParam(t *testing.T) {
	name, ok := bracketParam("filter[order]", filterPrefix)
	require.True(t, ok)
	assert.Equal(t, "order", name)

	_, ok = bracketParam("filter[order", filterPrefix)
	assert.False(t, ok)

	_, ok = bracketParam("fields[order]", filterPrefix)
	assert.False(t, ok)
}
