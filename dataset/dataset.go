/*
Package dataset provides the in-memory representation of the records a tree
is built from and tested against.
*/
package dataset

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/lordrook/J48/attribute"
)

/*
Dataset represents an ordered collection of records sharing a header, along
with the attribute set describing their columns. A dataset is never modified
after it is created: SubsetWith and Partition return new datasets
that share records with the receiver.
*/
type Dataset struct {
	attributes attribute.Set
	target     attribute.Attribute
	header     *Header
	records    []Record
}

/*
IngestionError is returned when raw rows cannot become a dataset: the
column names are wrong, a row is ragged or a value is not acceptable for its
attribute. Row is 1-based over the data rows, 0 meaning the header.
*/
type IngestionError struct {
	Row    int
	Column string
	Reason string
}

func (ie *IngestionError) Error() string {
	if ie.Row == 0 {
		return fmt.Sprintf("header column %s: %s", ie.Column, ie.Reason)
	}
	if ie.Column == "" {
		return fmt.Sprintf("row %d: %s", ie.Row, ie.Reason)
	}
	return fmt.Sprintf("row %d column %s: %s", ie.Row, ie.Column, ie.Reason)
}

/*
Infer takes the column names and raw rows of a dataset and returns the
attribute set describing them. Each column but the last is classified as
continuous or discrete with attribute.Infer. The last column is a discrete
attribute marked as target.
*/
func Infer(names []string, rows [][]string) attribute.Set {
	attrs := make([]attribute.Attribute, 0, len(names))
	for i, n := range names {
		if i == len(names)-1 {
			target := attribute.NewDiscreteAttribute(n)
			target.MarkAsTarget()
			attrs = append(attrs, target)
			continue
		}
		column := make([]string, 0, len(rows))
		for _, row := range rows {
			if i < len(row) {
				column = append(column, row[i])
			}
		}
		attrs = append(attrs, attribute.Infer(n, column))
	}
	return attribute.NewSet(attrs...)
}

/*
New takes an attribute set, the column names and the raw rows of a dataset
and returns the dataset or an IngestionError. The attribute set must have a
target and every attribute must name a column. Every row must have a value
per column, and that value must be valid for the column's attribute:
continuous values must be decimal numbers and target labels must not be
blank. Columns without attribute are carried along untouched.
*/
func New(attrs attribute.Set, names []string, rows [][]string) (*Dataset, error) {
	h, err := NewHeader(names...)
	if err != nil {
		return nil, err
	}
	target, ok := attrs.Target()
	if !ok {
		return nil, &IngestionError{Reason: "no target attribute"}
	}
	checked := make([]attribute.Attribute, h.Len())
	for _, a := range attrs.Attributes() {
		i, ok := h.Index(a.Name())
		if !ok {
			return nil, &IngestionError{Column: a.Name(), Reason: "attribute has no column"}
		}
		checked[i] = a
	}
	records := make([]Record, 0, len(rows))
	for r, row := range rows {
		record, err := NewRecord(h, row)
		if err != nil {
			return nil, &IngestionError{Row: r + 1, Reason: err.Error()}
		}
		for i, a := range checked {
			if a == nil {
				continue
			}
			if err := a.Valid(row[i]); err != nil {
				return nil, &IngestionError{Row: r + 1, Column: a.Name(), Reason: err.Error()}
			}
		}
		records = append(records, record)
	}
	return &Dataset{attrs, target, h, records}, nil
}

/*
Load takes the column names and raw rows of a dataset and returns the
dataset with attributes inferred by Infer.
*/
func Load(names []string, rows [][]string) (*Dataset, error) {
	return New(Infer(names, rows), names, rows)
}

// Attributes returns the attribute set of the dataset, target included
func (ds *Dataset) Attributes() attribute.Set {
	return ds.attributes
}

// Target returns the target attribute of the dataset
func (ds *Dataset) Target() attribute.Attribute {
	return ds.target
}

// Header returns the header shared by the records of the dataset
func (ds *Dataset) Header() *Header {
	return ds.header
}

// Len returns the number of records in the dataset
func (ds *Dataset) Len() int {
	return len(ds.records)
}

// Records returns the records of the dataset in order
func (ds *Dataset) Records() []Record {
	return append([]Record(nil), ds.records...)
}

// Record returns the i-th record of the dataset
func (ds *Dataset) Record(i int) Record {
	return ds.records[i]
}

// Rows returns the raw values of the records in column order
func (ds *Dataset) Rows() [][]string {
	rows := make([][]string, len(ds.records))
	for i, r := range ds.records {
		rows[i] = r.Values()
	}
	return rows
}

/*
SubsetWith takes an attribute.Criterion and returns a dataset with the
records satisfying it, in the same order.
*/
func (ds *Dataset) SubsetWith(ctx context.Context, c attribute.Criterion) (*Dataset, error) {
	var records []Record
	for _, r := range ds.records {
		ok, err := c.SatisfiedBy(ctx, r)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, r)
		}
	}
	return ds.with(records), nil
}

/*
Partition takes an attribute and groups the records of the dataset by their
value for it. It returns the distinct values in order of first appearance
and the subsets aligned with them. Records without the attribute are left
out.
*/
func (ds *Dataset) Partition(a attribute.Attribute) ([]string, []*Dataset) {
	groups := linkedhashmap.New()
	for _, r := range ds.records {
		v, ok := r.Value(a.Name())
		if !ok {
			continue
		}
		g, _ := groups.Get(v)
		records, _ := g.([]Record)
		groups.Put(v, append(records, r))
	}
	values := make([]string, 0, groups.Size())
	subsets := make([]*Dataset, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		values = append(values, it.Key().(string))
		subsets = append(subsets, ds.with(it.Value().([]Record)))
	}
	return values, subsets
}

// LabelCounts counts the target labels of the records in the dataset
func (ds *Dataset) LabelCounts() *LabelCounts {
	lc := NewLabelCounts()
	for _, r := range ds.records {
		if v, ok := r.Value(ds.target.Name()); ok {
			lc.Add(v, 1)
		}
	}
	return lc
}

func (ds *Dataset) with(records []Record) *Dataset {
	return &Dataset{ds.attributes, ds.target, ds.header, records}
}
