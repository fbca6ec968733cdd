package relquery

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrUnknownField is returned when a filter or ordering references a
	// field outside the entity's column whitelist.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownLookup is returned for an unsupported __lookup suffix.
	// The predicate layer is a SQL builder with a closed operator map,
	// so unknown suffixes are rejected rather than passed through.
	ErrUnknownLookup = errors.New("unknown lookup")
)

// lookups supported by the predicate layer.
var lookups = map[string]bool{
	"":          true, // equality
	"exact":     true,
	"ne":        true,
	"gt":        true,
	"gte":       true,
	"lt":        true,
	"lte":       true,
	"contains":  true,
	"icontains": true,
}

// Predicate is one compiled filter clause. Path is empty when the
// clause applies to the root entity directly.
type Predicate struct {
	Path   Path
	Kind   Kind
	Field  string
	Column string
	Lookup string
	Value  any
}

const (
	filterPrefix = "filter["
	fieldsPrefix = "fields["
)

// CompileFilters parses every filter[<entity>] parameter into
// predicates. Clauses are comma-separated and ANDed; clauses without
// an "=" are silently ignored. Entities other than the root are
// resolved to a relation path, which must be valid.
func CompileFilters(root Kind, params url.Values) ([]Predicate, error) {
	var predicates []Predicate
	for key, values := range params {
		entity, ok := bracketParam(key, filterPrefix)
		if !ok {
			continue
		}
		entity = strings.ToLower(entity)

		var path Path
		if entity != string(root) {
			var err error
			path, err = ParsePath(root, Resolve(root, entity))
			if err != nil {
				return nil, fmt.Errorf("filter[%s]: %w", entity, err)
			}
		} else {
			path = Path{Root: root}
		}
		kind := path.Terminal()

		for _, value := range values {
			for _, clause := range strings.Split(value, ",") {
				idx := strings.Index(clause, "=")
				if idx < 0 {
					continue // malformed clause, skip
				}
				fieldLookup := strings.TrimSpace(clause[:idx])
				raw := clause[idx+1:]

				field, lookup := splitLookup(fieldLookup)
				if !lookups[lookup] {
					return nil, fmt.Errorf("%w: %q", ErrUnknownLookup, lookup)
				}
				column, ok := ColumnOf(kind, field)
				if !ok {
					return nil, fmt.Errorf("%w: %q for entity %q", ErrUnknownField, field, kind)
				}

				predicates = append(predicates, Predicate{
					Path:   path,
					Kind:   kind,
					Field:  field,
					Column: column,
					Lookup: lookup,
					Value:  CoerceValue(raw),
				})
			}
		}
	}
	return predicates, nil
}

// CoerceValue converts a filter literal: "true"/"false" (any case) to
// bool, all-digit strings to int, everything else stays a string.
func CoerceValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && isDigits(raw) {
			return n
		}
	}
	return raw
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func splitLookup(fieldLookup string) (field, lookup string) {
	if i := strings.Index(fieldLookup, "__"); i >= 0 {
		return fieldLookup[:i], fieldLookup[i+2:]
	}
	return fieldLookup, ""
}

// bracketParam extracts the name from a "prefix[name]" parameter key.
func bracketParam(key, prefix string) (string, bool) {
	if strings.HasPrefix(key, prefix) && strings.HasSuffix(key, "]") {
		return key[len(prefix) : len(key)-1], true
	}
	return "", false
}
