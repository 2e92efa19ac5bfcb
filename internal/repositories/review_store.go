package repositories

import (
	"context"
	"fmt"
	"strings"

	"reviewsBack/internal/models"
	"reviewsBack/internal/query"
)

// reviewStore holds the persistence logic shared by both review tables.
// T is the row type; it must carry db tags for every column of table.
type reviewStore[T any] struct {
	db      *Database
	table   query.Table
	builder query.Builder
	subject query.Field
}

func newReviewStore[T any](db *Database, filters query.FilterSet, subject query.Field) reviewStore[T] {
	return reviewStore[T]{
		db:      db,
		table:   filters.Table(),
		builder: query.NewBuilder(filters.Table()),
		subject: subject,
	}
}

// list returns the rows matching every bound filter, in primary key order.
func (s reviewStore[T]) list(ctx context.Context, filters []query.Filter) ([]T, error) {
	stmt, args := s.builder.Build(filters).SQL()
	items := []T{}
	if err := s.db.SelectContext(ctx, &items, s.db.Rebind(stmt), args...); err != nil {
		return nil, err
	}
	return items, nil
}

// insert writes one row in its own transaction and returns it as stored,
// with the generated id and timestamp. A unique violation at insert or at
// commit is reported as models.ErrDuplicateReview.
func (s reviewStore[T]) insert(ctx context.Context, columns []string, values []interface{}) (T, error) {
	var item T

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return item, err
	}
	// no-op once committed
	defer func() { _ = tx.Rollback() }()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", s.table.Name, strings.Join(columns, ", "), placeholders)
	selectCols := strings.Join(s.table.Columns, ", ")

	if s.db.Dialect.Returning {
		row := tx.QueryRowxContext(ctx, s.db.Rebind(stmt+" RETURNING "+selectCols), values...)
		if err := row.StructScan(&item); err != nil {
			return item, translateWriteError(err)
		}
	} else {
		res, err := tx.ExecContext(ctx, s.db.Rebind(stmt), values...)
		if err != nil {
			return item, translateWriteError(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return item, err
		}
		get := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", selectCols, s.table.Name, s.table.Key)
		if err := tx.GetContext(ctx, &item, s.db.Rebind(get), id); err != nil {
			return item, err
		}
	}

	if err := tx.Commit(); err != nil {
		return item, translateWriteError(err)
	}
	return item, nil
}

// averageScore returns the mean score of every row whose subject column
// equals subjectID. ok is false when there are no such rows. Count and
// mean come from a single statement, so they share one snapshot.
func (s reviewStore[T]) averageScore(ctx context.Context, subjectID int) (avg float64, ok bool, err error) {
	return getAverageScore(ctx, s.db, s.table.Name, s.subject.Column(), subjectID)
}

func translateWriteError(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", models.ErrDuplicateReview, err)
	}
	return err
}
