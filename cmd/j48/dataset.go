package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/attribute/yaml"
	"github.com/lordrook/J48/dataset"
	"github.com/lordrook/J48/dataset/csv"
	"github.com/lordrook/J48/dataset/mongodataset"
	"github.com/lordrook/J48/dataset/sqldataset"
	"github.com/lordrook/J48/dataset/sqldataset/pgadapter"
	"github.com/lordrook/J48/dataset/sqldataset/sqlite3adapter"
	mgo "gopkg.in/mgo.v2"
)

const defaultTable = "samples"

const datasetLocationHelp = "a CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL (postgresql://...) or a MongoDB connection URL (mongodb://...)"

func readMetadata(l logger, metadataInput string) (attribute.Set, error) {
	if metadataInput == "" {
		l.Logf("No metadata given, attributes will be inferred from the data")
		return attribute.Set{}, nil
	}
	l.Logf("Reading attributes from metadata at %s...", metadataInput)
	attrs, err := yaml.ReadAttributesFromFile(metadataInput)
	if err != nil {
		return attribute.Set{}, err
	}
	l.Logf("Attributes from metadata read")
	return attrs, nil
}

func readDataset(ctx context.Context, l logger, input, table string, attrs attribute.Set) (*dataset.Dataset, error) {
	switch {
	case strings.HasPrefix(input, "postgresql://"):
		l.Logf("Creating PostgreSQL adapter for url %s to read table %s...", input, table)
		a, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return sqldataset.Load(ctx, a, table, attrs)
	case strings.HasPrefix(input, "mongodb://"):
		l.Logf("Connecting to MongoDB at %s to read collection %s...", input, table)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		return mongodataset.Load(ctx, session, table, attrs)
	case strings.HasSuffix(input, ".db"):
		l.Logf("Creating SQLite3 adapter for file %s to read table %s...", input, table)
		a, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return sqldataset.Load(ctx, a, table, attrs)
	case input == "":
		l.Logf("Reading dataset from STDIN...")
	default:
		l.Logf("Opening %s to read dataset...", input)
	}
	return csv.ReadDatasetFromFilePath(input, attrs)
}

func writeDataset(ctx context.Context, l logger, output, table string, ds *dataset.Dataset) error {
	switch {
	case strings.HasPrefix(output, "postgresql://"):
		l.Logf("Creating PostgreSQL adapter for url %s to write table %s...", output, table)
		a, err := pgadapter.New(output)
		if err != nil {
			return err
		}
		defer a.Close()
		return sqldataset.Write(ctx, a, table, ds)
	case strings.HasPrefix(output, "mongodb://"):
		l.Logf("Connecting to MongoDB at %s to write collection %s...", output, table)
		session, err := mgo.Dial(output)
		if err != nil {
			return err
		}
		defer session.Close()
		return mongodataset.Write(ctx, session, table, ds)
	case strings.HasSuffix(output, ".db"):
		l.Logf("Creating SQLite3 adapter for file %s to write table %s...", output, table)
		a, err := sqlite3adapter.New(output)
		if err != nil {
			return err
		}
		defer a.Close()
		return sqldataset.Write(ctx, a, table, ds)
	case output == "":
		l.Logf("Using STDOUT to dump dataset...")
		return csv.WriteDataset(ctx, os.Stdout, ds)
	}
	l.Logf("Creating %s to dump dataset...", output)
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = csv.WriteDataset(ctx, f, ds)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing dataset to %s: %v", output, err)
	}
	return nil
}
