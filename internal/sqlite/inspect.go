// Schema inspector: reads live table metadata so the baseline step can
// decide which migrations a pre-tracking database already carries. Used
// only during baselining, never by ordinary CRUD.
package sqlite

import "database/sql"

// querier is the subset of a database handle the inspector needs, so it
// works inside or outside a transaction.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// tableExists reports whether a table with the given name exists.
func tableExists(q querier, table string) (bool, error) {
	var n int64
	err := q.QueryRow(
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		table,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// columnExists reports whether the table has a column with the given name.
// A missing table yields false, not an error: pragma_table_info returns no
// rows for unknown tables.
func columnExists(q querier, table, column string) (bool, error) {
	var n int64
	err := q.QueryRow(
		"SELECT count(*) FROM pragma_table_info(?) WHERE name = ?",
		table, column,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
