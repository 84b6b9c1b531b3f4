package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset"
	"github.com/unixpickle/essentials"
)

const (
	idColumn = "id"

	// MaxRecordInsertionsPerStatement is the maximum number
	// of records that are added with a single insert command
	// by Write. Writing more records will result in making
	// more insertion commands.
	MaxRecordInsertionsPerStatement = 10
)

/*
Load takes a context, an Adapter, a table name and an attribute set and
returns the dataset stored in the table. When the attribute set is empty
the attributes are inferred from the values as dataset.Load does, so the
last column of the table holds the target.
*/
func Load(ctx context.Context, a Adapter, table string, attrs attribute.Set) (*dataset.Dataset, error) {
	qTable, err := a.ColumnName(table)
	if err != nil {
		return nil, essentials.AddCtx("load dataset", err)
	}
	rows, err := a.DB().QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s WHERE 1=0", qTable))
	if err != nil {
		return nil, essentials.AddCtx("load dataset: inspect table "+table, err)
	}
	columns, err := rows.Columns()
	rows.Close()
	if err != nil {
		return nil, essentials.AddCtx("load dataset: inspect table "+table, err)
	}
	var names, quoted []string
	ordered := false
	for _, c := range columns {
		if c == idColumn {
			ordered = true
			continue
		}
		qc, err := a.ColumnName(c)
		if err != nil {
			return nil, essentials.AddCtx("load dataset", err)
		}
		names = append(names, c)
		quoted = append(quoted, qc)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("load dataset: table %s has no columns", table)
	}
	var query bytes.Buffer
	query.WriteString("SELECT ")
	for i, qc := range quoted {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString(qc)
	}
	query.WriteString(" FROM " + qTable)
	if ordered {
		query.WriteString(fmt.Sprintf(` ORDER BY "%s"`, idColumn))
	}
	rows, err = a.DB().QueryContext(ctx, query.String())
	if err != nil {
		return nil, essentials.AddCtx("load dataset: query "+table, err)
	}
	defer rows.Close()
	var values [][]string
	for rows.Next() {
		scanned := make([]sql.NullString, len(names))
		dest := make([]interface{}, len(names))
		for i := range scanned {
			dest[i] = &scanned[i]
		}
		if err = rows.Scan(dest...); err != nil {
			return nil, essentials.AddCtx("load dataset: scan row", err)
		}
		row := make([]string, len(names))
		for i, s := range scanned {
			row[i] = s.String
		}
		values = append(values, row)
	}
	if err = rows.Err(); err != nil {
		return nil, essentials.AddCtx("load dataset: iterate rows", err)
	}
	if attrs.Len() == 0 {
		return dataset.Load(names, values)
	}
	return dataset.New(attrs, names, values)
}

/*
Write takes a context, an Adapter, a table name and a dataset and stores
the records of the dataset in the table, creating it if it does not exist.
Records are inserted in a single transaction, so either all of them are
stored or none is.
*/
func Write(ctx context.Context, a Adapter, table string, ds *dataset.Dataset) error {
	qTable, err := a.ColumnName(table)
	if err != nil {
		return essentials.AddCtx("write dataset", err)
	}
	names := ds.Header().Names()
	quoted := make([]string, len(names))
	for i, n := range names {
		if quoted[i], err = a.ColumnName(n); err != nil {
			return essentials.AddCtx("write dataset", err)
		}
	}
	var create bytes.Buffer
	fmt.Fprintf(&create, "CREATE TABLE IF NOT EXISTS %s(", qTable)
	for _, qc := range quoted {
		fmt.Fprintf(&create, "%s TEXT NOT NULL, ", qc)
	}
	create.WriteString(a.IDColumnDefinition() + ")")
	if _, err = a.DB().ExecContext(ctx, create.String()); err != nil {
		return essentials.AddCtx("write dataset: create table "+table, err)
	}
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return essentials.AddCtx("write dataset: begin transaction", err)
	}
	rows := ds.Rows()
	for start := 0; start < len(rows); start += MaxRecordInsertionsPerStatement {
		end := start + MaxRecordInsertionsPerStatement
		if end > len(rows) {
			end = len(rows)
		}
		stmt, args := insertStatement(a, qTable, quoted, rows[start:end])
		if _, err = tx.ExecContext(ctx, stmt, args...); err != nil {
			tx.Rollback()
			return essentials.AddCtx(fmt.Sprintf("write dataset: insert records %d to %d", start+1, end), err)
		}
	}
	if err = tx.Commit(); err != nil {
		return essentials.AddCtx("write dataset: commit", err)
	}
	return nil
}

func insertStatement(a Adapter, qTable string, quoted []string, rows [][]string) (string, []interface{}) {
	var stmt bytes.Buffer
	fmt.Fprintf(&stmt, "INSERT INTO %s (", qTable)
	for i, qc := range quoted {
		if i > 0 {
			stmt.WriteString(", ")
		}
		stmt.WriteString(qc)
	}
	stmt.WriteString(") VALUES ")
	args := make([]interface{}, 0, len(rows)*len(quoted))
	for r, row := range rows {
		if r > 0 {
			stmt.WriteString(", ")
		}
		stmt.WriteString("(")
		for i, v := range row {
			if i > 0 {
				stmt.WriteString(", ")
			}
			args = append(args, v)
			stmt.WriteString(a.Placeholder(len(args)))
		}
		stmt.WriteString(")")
	}
	return stmt.String(), args
}
