package relquery

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is wrapped by every planner error caused by a join or
// filter referencing an unresolvable relation. Handlers map it to a
// client error; no partial execution happens.
var ErrInvalidPath = errors.New("invalid relation path")

// Path is a validated chain of relation hops starting at a root kind.
type Path struct {
	Raw    string
	Root   Kind
	Hops   []Relation
	ToMany bool // true as soon as any hop is to-many
}

// Terminal returns the kind the path ends at.
func (p Path) Terminal() Kind {
	if len(p.Hops) == 0 {
		return p.Root
	}
	return p.Hops[len(p.Hops)-1].Target
}

// GormPath returns the dotted association names GORM expects for
// Joins/Preload, e.g. "Stocks.Warehouse".
func (p Path) GormPath() string {
	names := make([]string, len(p.Hops))
	for i, h := range p.Hops {
		names[i] = h.GormField
	}
	return strings.Join(names, ".")
}

// ParsePath validates a dot- or double-underscore-separated relation
// path against the schema graph. Unknown segments are an error, never
// silently dropped.
func ParsePath(root Kind, raw string) (Path, error) {
	p := Path{Raw: raw, Root: root}
	current := root
	for _, segment := range strings.Split(normalizePath(raw), ".") {
		if segment == "" {
			return Path{}, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, raw)
		}
		rel, ok := RelationOf(current, segment)
		if !ok {
			return Path{}, fmt.Errorf("%w: %q has no relation %q", ErrInvalidPath, current, segment)
		}
		p.Hops = append(p.Hops, rel)
		if rel.ToMany {
			p.ToMany = true
		}
		current = rel.Target
	}
	return p, nil
}

// Plan partitions requested relation paths into eager joins (to-one
// chains, loaded in the root query) and batched loads (anything with a
// to-many hop, fetched by IN(rootIDs) afterwards).
type Plan struct {
	Eager   []Path
	Batched []Path
}

// PlanJoins classifies each requested path. The first to-many hop
// downgrades the whole path to a batched load.
func PlanJoins(root Kind, raws []string) (Plan, error) {
	var plan Plan
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		path, err := ParsePath(root, raw)
		if err != nil {
			return Plan{}, err
		}
		if path.ToMany {
			plan.Batched = append(plan.Batched, path)
		} else {
			plan.Eager = append(plan.Eager, path)
		}
	}
	return plan, nil
}

// SplitList parses a comma-separated request parameter.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizePath(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "__", ".")
}
