package query

import (
	"errors"
	"net/url"
	"testing"

	"reviewsBack/internal/models"
)

var testTable = NewTable("user_review", "id",
	[]string{"id", "reviewer_id", "reviewee_id", "booking_id", "score", "comment", "timestamp"},
	BookingID, ReviewerID, RevieweeID)

func TestNewFilterSetRejectsUnknownField(t *testing.T) {
	_, err := NewFilterSet(testTable, Equal(BookingID), Equal(PublicationID))
	if err == nil {
		t.Fatalf("expected error for publication_id on user_review")
	}
}

func TestNewFilterSetRejectsUnknownOperator(t *testing.T) {
	_, err := NewFilterSet(testTable, FilterSpec{Field: BookingID, Type: Int})
	if err == nil {
		t.Fatalf("expected error for missing operator")
	}
}

func TestMustFilterSetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustFilterSet(testTable, Equal(PublicationID))
}

func TestFilterSetBind(t *testing.T) {
	set := MustFilterSet(testTable, Equal(BookingID), Equal(ReviewerID), Equal(RevieweeID))

	t.Run("absent values are unbound", func(t *testing.T) {
		filters, err := set.Bind(url.Values{})
		if err != nil {
			t.Fatalf("Bind: %v", err)
		}
		if len(filters) != 3 {
			t.Fatalf("expected 3 filters, got %d", len(filters))
		}
		for _, f := range filters {
			if f.Bound {
				t.Fatalf("expected %s to be unbound", f.Spec.Field)
			}
		}
	})

	t.Run("empty value is unbound", func(t *testing.T) {
		filters, err := set.Bind(url.Values{"booking_id": {""}})
		if err != nil {
			t.Fatalf("Bind: %v", err)
		}
		if filters[0].Bound {
			t.Fatalf("expected booking_id to be unbound")
		}
	})

	t.Run("binds in registration order", func(t *testing.T) {
		filters, err := set.Bind(url.Values{"reviewee_id": {"5"}, "booking_id": {"100"}})
		if err != nil {
			t.Fatalf("Bind: %v", err)
		}
		if !filters[0].Bound || filters[0].Value != 100 {
			t.Fatalf("unexpected booking_id filter: %+v", filters[0])
		}
		if filters[1].Bound {
			t.Fatalf("expected reviewer_id to be unbound")
		}
		if !filters[2].Bound || filters[2].Value != 5 {
			t.Fatalf("unexpected reviewee_id filter: %+v", filters[2])
		}
	})

	t.Run("malformed value is a validation error", func(t *testing.T) {
		_, err := set.Bind(url.Values{"reviewer_id": {"abc"}})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "reviewer_id" {
			t.Fatalf("expected field reviewer_id, got %q", verr.Field)
		}
	})

	t.Run("bound values do not leak between calls", func(t *testing.T) {
		if _, err := set.Bind(url.Values{"booking_id": {"7"}}); err != nil {
			t.Fatalf("Bind: %v", err)
		}
		filters, err := set.Bind(url.Values{})
		if err != nil {
			t.Fatalf("Bind: %v", err)
		}
		if filters[0].Bound {
			t.Fatalf("booking_id leaked from previous call")
		}
	})
}

func TestFilterApplyDoesNotMutate(t *testing.T) {
	base := Select(testTable).Where("score = ?", 3)
	got := Equal(BookingID).Bind(100).Apply(base)

	if len(base.Conditions()) != 1 {
		t.Fatalf("base query was modified: %v", base.Conditions())
	}
	conds := got.Conditions()
	if len(conds) != 2 || conds[1] != "booking_id = ?" {
		t.Fatalf("unexpected conditions: %v", conds)
	}
	args := got.Args()
	if len(args) != 2 || args[1] != 100 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUnboundFilterApplyIsNoop(t *testing.T) {
	base := Select(testTable)
	got := Filter{Spec: Equal(BookingID)}.Apply(base)
	if len(got.Conditions()) != 0 {
		t.Fatalf("expected no conditions, got %v", got.Conditions())
	}
}

func TestOperatorSQL(t *testing.T) {
	tests := map[Operator]string{Eq: "=", Ne: "<>", Lt: "<", Le: "<=", Gt: ">", Ge: ">="}
	for op, want := range tests {
		if got := op.SQL(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if got := Operator(0).SQL(); got != "" {
		t.Errorf("expected empty token for zero operator, got %q", got)
	}
}
