/*
Package sqldataset loads datasets from and stores them into SQL database
tables.

A dataset is stored in a single table with a TEXT column per dataset column,
holding the raw values exactly as they were read, plus an auto-incremented
"id" column keeping the order of the records. Tables without an "id" column
can be loaded too, in the order the database returns them.

The package works over an Adapter hiding the differences between database
engines; see the sqlite3adapter and pgadapter sub-packages.
*/
package sqldataset
