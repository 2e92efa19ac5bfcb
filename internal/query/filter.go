package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"reviewsBack/internal/models"
)

// Field is a filterable review attribute. Each field maps to exactly one column.
type Field int

const (
	BookingID Field = iota + 1
	ReviewerID
	RevieweeID
	PublicationID
)

// Column returns the column the field is stored in. It is also the query
// parameter name clients use to filter on it.
func (f Field) Column() string {
	switch f {
	case BookingID:
		return "booking_id"
	case ReviewerID:
		return "reviewer_id"
	case RevieweeID:
		return "reviewee_id"
	case PublicationID:
		return "publication_id"
	default:
		return ""
	}
}

func (f Field) String() string {
	if c := f.Column(); c != "" {
		return c
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Operator is a binary comparison between a column and a bound value.
type Operator int

const (
	Eq Operator = iota + 1
	Ne
	Lt
	Le
	Gt
	Ge
)

// SQL returns the operator token.
func (op Operator) SQL() string {
	switch op {
	case Eq:
		return "="
	case Ne:
		return "<>"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return ""
	}
}

// ParamType is the declared input type of a filter value.
type ParamType int

const (
	Int ParamType = iota + 1
)

// FilterSpec describes "filter Field using Op against a value of Type".
// A spec is immutable and safe to share; values are attached with Bind.
type FilterSpec struct {
	Field Field
	Op    Operator
	Type  ParamType
}

// Equal is shorthand for an integer equality spec, the only kind the API exposes.
func Equal(f Field) FilterSpec {
	return FilterSpec{Field: f, Op: Eq, Type: Int}
}

// Bind attaches v to the spec.
func (s FilterSpec) Bind(v int) Filter {
	return Filter{Spec: s, Value: v, Bound: true}
}

// Param returns the query parameter name the spec reads from.
func (s FilterSpec) Param() string {
	return s.Field.Column()
}

func (s FilterSpec) parse(raw string) (int, error) {
	switch s.Type {
	case Int:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, &models.ValidationError{
				Field:   s.Param(),
				Message: fmt.Sprintf("invalid value for %s: %q is not an integer", s.Param(), raw),
			}
		}
		return v, nil
	default:
		return 0, fmt.Errorf("query: unsupported param type %d for %s", s.Type, s.Field)
	}
}

func (s FilterSpec) String() string {
	return fmt.Sprintf("filter %s by %s", s.Field, s.Op.SQL())
}

// Filter is a FilterSpec possibly bound to a request value. Unbound filters
// are skipped by Apply and by the Builder.
type Filter struct {
	Spec  FilterSpec
	Value int
	Bound bool
}

// Apply returns q with "column op value" conjoined. q itself is not modified.
func (f Filter) Apply(q Query) Query {
	if !f.Bound {
		return q
	}
	return q.Where(f.Spec.Field.Column()+" "+f.Spec.Op.SQL()+" ?", f.Value)
}

// FilterSet is the ordered collection of specs registered for one table.
type FilterSet struct {
	table Table
	specs []FilterSpec
}

// NewFilterSet registers specs against t. Every spec must name a field of
// t and carry a known operator and type.
func NewFilterSet(t Table, specs ...FilterSpec) (FilterSet, error) {
	for _, s := range specs {
		if !t.Has(s.Field) {
			return FilterSet{}, fmt.Errorf("query: %s is not a filterable field of %s", s.Field, t.Name)
		}
		if s.Op.SQL() == "" {
			return FilterSet{}, fmt.Errorf("query: unknown operator %d for %s", s.Op, s.Field)
		}
		if s.Type != Int {
			return FilterSet{}, fmt.Errorf("query: unsupported param type %d for %s", s.Type, s.Field)
		}
	}
	cp := make([]FilterSpec, len(specs))
	copy(cp, specs)
	return FilterSet{table: t, specs: cp}, nil
}

// MustFilterSet is like NewFilterSet but panics on a bad registration.
// Intended for package-level variables.
func MustFilterSet(t Table, specs ...FilterSpec) FilterSet {
	s, err := NewFilterSet(t, specs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Table returns the table the set was registered for.
func (s FilterSet) Table() Table {
	return s.table
}

// Specs returns the registered specs in registration order.
func (s FilterSet) Specs() []FilterSpec {
	cp := make([]FilterSpec, len(s.specs))
	copy(cp, s.specs)
	return cp
}

// Bind reads every registered parameter from values and returns a new slice
// of filters, one per spec, in registration order. Missing or empty
// parameters produce unbound filters. A value of the wrong type is reported
// as a *models.ValidationError.
func (s FilterSet) Bind(values url.Values) ([]Filter, error) {
	filters := make([]Filter, 0, len(s.specs))
	for _, spec := range s.specs {
		raw := values.Get(spec.Param())
		if strings.TrimSpace(raw) == "" {
			filters = append(filters, Filter{Spec: spec})
			continue
		}
		v, err := spec.parse(raw)
		if err != nil {
			return nil, err
		}
		filters = append(filters, spec.Bind(v))
	}
	return filters, nil
}
