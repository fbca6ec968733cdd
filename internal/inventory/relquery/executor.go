package relquery

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// OrderTerm is one validated ordering field of the root entity.
type OrderTerm struct {
	Column string
	Desc   bool
}

// ParseOrdering parses "field,-field2" against the root's column
// whitelist. A "-" prefix means descending.
func ParseOrdering(root Kind, raw string) ([]OrderTerm, error) {
	var terms []OrderTerm
	for _, f := range SplitList(raw) {
		desc := strings.HasPrefix(f, "-")
		name := strings.TrimPrefix(f, "-")
		column, ok := ColumnOf(root, name)
		if !ok {
			return nil, fmt.Errorf("ordering: %w: %q for entity %q", ErrUnknownField, name, root)
		}
		terms = append(terms, OrderTerm{Column: column, Desc: desc})
	}
	return terms, nil
}

// Query is a fully validated related-data query: load plan, compiled
// predicates, ordering, distinct and limit.
type Query struct {
	Root       Kind
	Plan       Plan
	Predicates []Predicate
	Ordering   []OrderTerm
	Distinct   bool
	Limit      int // negative means no limit
}

// Result carries the fetched root entities (with attached related data)
// and the resolved root SQL, which is advisory/debug output only.
type Result struct {
	Rows []any
	SQL  string
}

// Runner executes a validated query.
type Runner interface {
	Run(ctx context.Context, q Query) (Result, error)
}

// Executor runs queries against the relational store. Round-trips are
// bounded: one root query (with eager joins and predicate joins) plus
// one IN(ids) fetch per batched path segment, never one query per row.
type Executor struct {
	db *gorm.DB
}

func NewExecutor(db *gorm.DB) *Executor {
	return &Executor{db: db}
}

func (e *Executor) Run(ctx context.Context, q Query) (Result, error) {
	// Dry run first to capture the resolved SQL for the diagnostic field.
	dry := e.apply(e.db.Session(&gorm.Session{DryRun: true}).WithContext(ctx), q)
	sqlText := dry.Find(sliceOf(q.Root)).Statement.SQL.String()

	rows, err := findRows(e.apply(e.db.WithContext(ctx), q), q.Root)
	if err != nil {
		return Result{}, fmt.Errorf("query execution: %w", err)
	}
	return Result{Rows: rows, SQL: sqlText}, nil
}

// apply translates the query into a GORM chain. All identifiers come
// from the closed schema tables; request values are always bound
// parameters.
func (e *Executor) apply(db *gorm.DB, q Query) *gorm.DB {
	rootTable := TableOf(q.Root)
	tx := db.Model(modelOf(q.Root))

	joins := newJoinSet(rootTable)
	for _, p := range q.Predicates {
		qualifier := rootTable
		if len(p.Path.Hops) > 0 {
			qualifier = joins.aliasFor(p.Path)
		}
		expr, arg := predicateExpr(p, qualifier)
		tx = tx.Where(expr, arg)
	}
	for _, j := range joins.clauses {
		tx = tx.Joins(j)
	}

	for _, p := range q.Plan.Eager {
		tx = tx.Joins(p.GormPath())
	}
	for _, p := range q.Plan.Batched {
		tx = tx.Preload(p.GormPath())
	}

	if q.Distinct {
		tx = tx.Distinct()
	}
	for _, t := range q.Ordering {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Table: rootTable, Name: t.Column},
			Desc:   t.Desc,
		})
	}
	if q.Limit >= 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx
}

// joinSet generates INNER JOIN clauses for predicate paths, reusing
// aliases for shared path prefixes so that two filters down the same
// relation hit the same joined row.
type joinSet struct {
	rootTable string
	seen      map[string]string
	clauses   []string
}

func newJoinSet(rootTable string) *joinSet {
	return &joinSet{rootTable: rootTable, seen: map[string]string{}}
}

func (j *joinSet) aliasFor(p Path) string {
	prevAlias := j.rootTable
	prefix := ""
	for _, hop := range p.Hops {
		if prefix == "" {
			prefix = hop.Name
		} else {
			prefix += "." + hop.Name
		}
		alias, ok := j.seen[prefix]
		if !ok {
			alias = "f_" + strings.ReplaceAll(prefix, ".", "_")
			j.seen[prefix] = alias
			j.clauses = append(j.clauses, fmt.Sprintf(
				"JOIN %s AS %s ON %s.%s = %s.%s",
				hop.Table, alias, alias, hop.JoinColumn, prevAlias, hop.LocalColumn,
			))
		}
		prevAlias = alias
	}
	return prevAlias
}

func predicateExpr(p Predicate, qualifier string) (string, any) {
	column := qualifier + "." + p.Column
	switch p.Lookup {
	case "ne":
		return column + " <> ?", p.Value
	case "gt":
		return column + " > ?", p.Value
	case "gte":
		return column + " >= ?", p.Value
	case "lt":
		return column + " < ?", p.Value
	case "lte":
		return column + " <= ?", p.Value
	case "contains":
		return column + " LIKE ?", "%" + fmt.Sprint(p.Value) + "%"
	case "icontains":
		return column + " ILIKE ?", "%" + fmt.Sprint(p.Value) + "%"
	default: // "" and "exact", validated by the filter compiler
		return column + " = ?", p.Value
	}
}

func modelOf(k Kind) any {
	switch k {
	case KindBrand:
		return &domain.Brand{}
	case KindCategory:
		return &domain.Category{}
	case KindProduct:
		return &domain.Product{}
	case KindWarehouse:
		return &domain.Warehouse{}
	case KindStock:
		return &domain.Stock{}
	case KindCustomer:
		return &domain.Customer{}
	case KindOrder:
		return &domain.Order{}
	case KindOrderItem:
		return &domain.OrderItem{}
	case KindPayment:
		return &domain.Payment{}
	}
	return nil
}

func sliceOf(k Kind) any {
	switch k {
	case KindBrand:
		return &[]domain.Brand{}
	case KindCategory:
		return &[]domain.Category{}
	case KindProduct:
		return &[]domain.Product{}
	case KindWarehouse:
		return &[]domain.Warehouse{}
	case KindStock:
		return &[]domain.Stock{}
	case KindCustomer:
		return &[]domain.Customer{}
	case KindOrder:
		return &[]domain.Order{}
	case KindOrderItem:
		return &[]domain.OrderItem{}
	case KindPayment:
		return &[]domain.Payment{}
	}
	return nil
}

func findRows(tx *gorm.DB, k Kind) ([]any, error) {
	switch k {
	case KindBrand:
		return collect[domain.Brand](tx)
	case KindCategory:
		return collect[domain.Category](tx)
	case KindProduct:
		return collect[domain.Product](tx)
	case KindWarehouse:
		return collect[domain.Warehouse](tx)
	case KindStock:
		return collect[domain.Stock](tx)
	case KindCustomer:
		return collect[domain.Customer](tx)
	case KindOrder:
		return collect[domain.Order](tx)
	case KindOrderItem:
		return collect[domain.OrderItem](tx)
	case KindPayment:
		return collect[domain.Payment](tx)
	}
	return nil, fmt.Errorf("%w: unknown root entity %q", ErrInvalidPath, k)
}

func collect[T any](tx *gorm.DB) ([]any, error) {
	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]any, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}
