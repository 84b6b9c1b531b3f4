package sqldataset

import (
	"database/sql"
)

/*
Adapter is an interface providing the methods
needed to store datasets on a database backend.
*/
type Adapter interface {
	// DB returns the database handle to run statements on
	DB() *sql.DB
	// ColumnName takes the name of a dataset column or table
	// and returns it quoted for use in statements, or an
	// error if the name cannot be used.
	ColumnName(string) (string, error)
	// Placeholder returns the placeholder for the i-th
	// (1-based) argument of a statement.
	Placeholder(i int) string
	// IDColumnDefinition returns the definition of the
	// auto-incremented "id" column of dataset tables.
	IDColumnDefinition() string
	// Close closes the database handle
	Close() error
}
