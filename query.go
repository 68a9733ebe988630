package gosnowconn

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// RunQuery opens its own connection from the environment, executes one
// query and fetches every row into memory. The connection is torn down on
// all paths before returning; callers are responsible for result set size.
func RunQuery(ctx context.Context, query string) (*ResultSet, error) {
	db, err := Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return FetchAll(ctx, db, query)
}

// FetchAll executes query on db verbatim and drains the rows. The rows
// handle is released before FetchAll returns, on the error path included;
// db stays open and remains the caller's to close.
func FetchAll(ctx context.Context, db *sql.DB, query string) (*ResultSet, error) {
	tag := uuid.NewString()
	logger.WithContext(ctx).Debugf("query %v: %v", tag, query)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	result := &ResultSet{
		QueryTag: tag,
		Columns:  columns,
	}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		for i := range values {
			values[i] = normalizeValue(values[i], types[i].DatabaseTypeName())
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Debugf("query %v: %v rows", tag, result.RowCount())
	return result, nil
}
