package query

import "strings"

// Query is an immutable SELECT over one table. Every method that adds to it
// returns a copy.
type Query struct {
	table   string
	columns []string
	where   []string
	args    []interface{}
	orderBy string
}

// Select is the base "select all" query over t, in primary key order.
func Select(t Table) Query {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	return Query{table: t.Name, columns: cols, orderBy: t.Key}
}

// Where returns a copy of q with cond conjoined.
func (q Query) Where(cond string, args ...interface{}) Query {
	next := q
	next.where = make([]string, len(q.where), len(q.where)+1)
	copy(next.where, q.where)
	next.where = append(next.where, cond)
	next.args = make([]interface{}, len(q.args), len(q.args)+len(args))
	copy(next.args, q.args)
	next.args = append(next.args, args...)
	return next
}

// Conditions returns the WHERE conditions in the order they were added.
func (q Query) Conditions() []string {
	cp := make([]string, len(q.where))
	copy(cp, q.where)
	return cp
}

// Args returns the bound arguments in placeholder order.
func (q Query) Args() []interface{} {
	cp := make([]interface{}, len(q.args))
	copy(cp, q.args)
	return cp
}

// SQL renders the query with "?" placeholders.
func (q Query) SQL() (string, []interface{}) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(q.columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(q.table)
	if len(q.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.where, " AND "))
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}
	return b.String(), q.Args()
}

// Builder folds filters into the base query of a table.
type Builder struct {
	table Table
}

// NewBuilder returns a Builder for t.
func NewBuilder(t Table) Builder {
	return Builder{table: t}
}

// Build applies filters in order on top of Select(table), skipping unbound
// ones. The result depends only on the filters passed in.
func (b Builder) Build(filters []Filter) Query {
	q := Select(b.table)
	for _, f := range filters {
		if !f.Bound {
			continue
		}
		q = f.Apply(q)
	}
	return q
}
