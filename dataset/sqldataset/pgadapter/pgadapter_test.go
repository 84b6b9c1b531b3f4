package pgadapter

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset"
	"github.com/lordrook/J48/dataset/sqldataset"
)

func TestWriteAndLoad(t *testing.T) {
	url := os.Getenv("J48_POSTGRES_URL")
	if url == "" {
		t.Skip("J48_POSTGRES_URL not set")
	}
	a, err := New(url)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	names := []string{"Humidity", "Windy", "Play"}
	rows := [][]string{
		{"85", "false", "No"},
		{"90", "true", "No"},
		{"86.50", "false", "Yes"},
	}
	ds, err := dataset.Load(names, rows)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	table := "samples_" + uuid.NewString()[:8]
	defer a.DB().Exec(`DROP TABLE IF EXISTS "` + table + `"`)
	if err = sqldataset.Write(ctx, a, table, ds); err != nil {
		t.Fatal(err)
	}
	loaded, err := sqldataset.Load(ctx, a, table, attribute.Set{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded.Rows(), rows) {
		t.Errorf("expected rows %v, got %v", rows, loaded.Rows())
	}
}

func TestPlaceholder(t *testing.T) {
	a := &adapter{}
	if p := a.Placeholder(3); p != "$3" {
		t.Errorf("expected $3, got %s", p)
	}
}
