package dataset

import (
	"context"
	"fmt"

	"github.com/lordrook/J48/attribute"
)

// Header holds the ordered column names shared by the records of a dataset.
type Header struct {
	names []string
	index map[string]int
}

/*
NewHeader takes the column names of a dataset in order and returns a header
for them. It returns an IngestionError if a name is blank or repeated.
*/
func NewHeader(names ...string) (*Header, error) {
	h := &Header{make([]string, len(names)), make(map[string]int, len(names))}
	for i, n := range names {
		if n == "" {
			return nil, &IngestionError{Row: 0, Column: fmt.Sprintf("#%d", i+1), Reason: "blank column name"}
		}
		if _, ok := h.index[n]; ok {
			return nil, &IngestionError{Row: 0, Column: n, Reason: "repeated column name"}
		}
		h.names[i] = n
		h.index[n] = i
	}
	return h, nil
}

// Names returns the column names in order
func (h *Header) Names() []string {
	return append([]string(nil), h.names...)
}

// Len returns the number of columns
func (h *Header) Len() int {
	return len(h.names)
}

// Index returns the position of the named column and whether it exists
func (h *Header) Index(name string) (int, bool) {
	i, ok := h.index[name]
	return i, ok
}

/*
Record represents one observation: an ordered mapping from column name to
raw string value. Records implement attribute.Sample.
*/
type Record struct {
	header *Header
	values []string
}

/*
NewRecord takes a header and the values of a row in column order and returns
a record. An error is returned when the number of values does not match the
number of columns.
*/
func NewRecord(h *Header, values []string) (Record, error) {
	if len(values) != h.Len() {
		return Record{}, fmt.Errorf("record has %d values for %d columns", len(values), h.Len())
	}
	return Record{h, append([]string(nil), values...)}, nil
}

// Header returns the header of the record
func (r Record) Header() *Header {
	return r.header
}

// Value returns the raw value for the named column and whether it exists
func (r Record) Value(name string) (string, bool) {
	if r.header == nil {
		return "", false
	}
	i, ok := r.header.index[name]
	if !ok {
		return "", false
	}
	return r.values[i], true
}

// Values returns the raw values of the record in column order
func (r Record) Values() []string {
	return append([]string(nil), r.values...)
}

// ValueFor returns the value of the record for the given attribute
func (r Record) ValueFor(_ context.Context, a attribute.Attribute) (string, bool, error) {
	v, ok := r.Value(a.Name())
	return v, ok, nil
}
