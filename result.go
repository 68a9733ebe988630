package gosnowconn

// ResultSet holds one query's fully fetched output. Rows are positional
// tuples aligned with Columns.
type ResultSet struct {
	QueryTag string
	Columns  []string
	Rows     [][]interface{}
}

func (rs *ResultSet) RowCount() int {
	return len(rs.Rows)
}
