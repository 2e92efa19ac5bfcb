package query

// Table is a queryable entity: its name, the columns a "select all" returns
// and the fields that may be filtered on.
type Table struct {
	Name    string
	Columns []string
	Key     string
	fields  map[Field]struct{}
}

// NewTable describes a table. key is the primary key column used for the
// default ordering.
func NewTable(name, key string, columns []string, fields ...Field) Table {
	set := make(map[Field]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return Table{Name: name, Columns: columns, Key: key, fields: set}
}

// Has reports whether f can be filtered on t.
func (t Table) Has(f Field) bool {
	_, ok := t.fields[f]
	return ok
}
