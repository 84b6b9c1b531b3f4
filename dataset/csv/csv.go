/*
Package csv reads datasets from and writes them to CSV streams. The first
row holds the column names and the last column holds the target labels.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset"
)

/*
Writer is an interface for a CSV stream to which records
can be written.
*/
type Writer interface {
	// Write will attempt to write the given records
	// and will return the actually written number
	// of records and an error (if not all records
	// could be written)
	Write(context.Context, []dataset.Record) (int, error)
	// Count returns the total number of records written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count int
	names []string
	w     *csv.Writer
}

/*
ReadDataset takes an io.Reader for a CSV stream and an attribute set and
returns the dataset parsed from the reader or an error.

The first row of the CSV content is expected to hold the column names. When
the attribute set is empty the attributes are inferred from the content:
the last column is the target and every other column is continuous if all
its non-blank values are decimal numbers, discrete otherwise.
*/
func ReadDataset(reader io.Reader, attrs attribute.Set) (*dataset.Dataset, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		rows = append(rows, row)
	}
	if attrs.Len() == 0 {
		return dataset.Load(header, rows)
	}
	return dataset.New(attrs, header, rows)
}

/*
ReadDatasetFromFilePath takes a filepath string and an attribute set, opens
the file to which the filepath points and uses ReadDataset to return the
dataset read from it. If the filepath is empty os.Stdin is read instead.
*/
func ReadDatasetFromFilePath(filepath string, attrs attribute.Set) (*dataset.Dataset, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	ds, err := ReadDataset(f, attrs)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return ds, err
}

/*
NewWriter takes an io.Writer and the column names and returns a Writer
that will write records on the io.Writer after a header row with the names.
*/
func NewWriter(writer io.Writer, names []string) (Writer, error) {
	w := csv.NewWriter(writer)
	err := w.Write(names)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{names: names, w: w}, nil
}

/*
WriteDataset takes a writer and a dataset and dumps the dataset to the
writer in CSV format. It returns an error if something went wrong when
writing.
*/
func WriteDataset(ctx context.Context, writer io.Writer, ds *dataset.Dataset) error {
	cw, err := NewWriter(writer, ds.Header().Names())
	if err != nil {
		return err
	}
	_, err = cw.Write(ctx, ds.Records())
	if err != nil {
		return err
	}
	return cw.Flush()
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(ctx context.Context, records []dataset.Record) (int, error) {
	for n, r := range records {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := cw.writeRecord(r); err != nil {
			return n, err
		}
	}
	return len(records), nil
}

func (cw *csvWriter) writeRecord(r dataset.Record) error {
	row := make([]string, len(cw.names))
	for j, n := range cw.names {
		v, ok := r.Value(n)
		if !ok {
			return fmt.Errorf("writing CSV row for record %d: no value for column %s", cw.count+1, n)
		}
		row[j] = v
	}
	err := cw.w.Write(row)
	if err != nil {
		return fmt.Errorf("writing CSV row for record %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
