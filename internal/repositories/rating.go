package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

func getAverageScore(ctx context.Context, db *Database, table, column string, id int) (float64, bool, error) {
	stmt := fmt.Sprintf("SELECT AVG(score) FROM %s WHERE %s = ?", table, column)
	var avg sql.NullFloat64
	if err := db.QueryRowxContext(ctx, db.Rebind(stmt), id).Scan(&avg); err != nil {
		return 0, false, err
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}
