/*
Package mongodataset loads datasets from and stores them into MongoDB
collections, one document per record.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset"
	"github.com/unixpickle/essentials"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const idField = "_id"

/*
Load takes a context, a MongoDB session, a collection name and an attribute
set and returns the dataset stored in the collection of the session's default
database. Documents are read in _id order and the columns of the dataset are
the fields of the first document, in order. When the attribute set is empty
the attributes are inferred from the values.
*/
func Load(ctx context.Context, session *mgo.Session, collection string, attrs attribute.Set) (*dataset.Dataset, error) {
	iter := session.DB("").C(collection).Find(nil).Sort(idField).Iter()
	defer iter.Close()
	var names []string
	var rows [][]string
	index := make(map[string]int)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var doc bson.D
		if !iter.Next(&doc) {
			break
		}
		if names == nil {
			for _, e := range doc {
				if e.Name == idField {
					continue
				}
				index[e.Name] = len(names)
				names = append(names, e.Name)
			}
		}
		row := make([]string, len(names))
		for _, e := range doc {
			i, ok := index[e.Name]
			if !ok {
				continue
			}
			v, err := stringValue(e.Value)
			if err != nil {
				return nil, essentials.AddCtx(fmt.Sprintf("load dataset: document %d field %s", len(rows)+1, e.Name), err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := iter.Err(); err != nil {
		return nil, essentials.AddCtx("load dataset: iterate "+collection, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("load dataset: collection %s holds no fields", collection)
	}
	if attrs.Len() == 0 {
		return dataset.Load(names, rows)
	}
	return dataset.New(attrs, names, rows)
}

/*
Write takes a context, a MongoDB session, a collection name and a dataset and
inserts one document per record of the dataset into the collection of the
session's default database. Values are stored as the strings they were read as.
*/
func Write(ctx context.Context, session *mgo.Session, collection string, ds *dataset.Dataset) error {
	names := ds.Header().Names()
	for _, n := range names {
		if n == idField {
			return fmt.Errorf("invalid column name %q: reserved collection field", idField)
		}
		if strings.ContainsAny(n, ".$") {
			return fmt.Errorf("invalid column name %q: contains reserved characters %q or %q", n, ".", "$")
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	docs := make([]interface{}, 0, ds.Len())
	for _, row := range ds.Rows() {
		doc := make(bson.D, 0, len(names))
		for i, n := range names {
			doc = append(doc, bson.DocElem{Name: n, Value: row[i]})
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil
	}
	if err := session.DB("").C(collection).Insert(docs...); err != nil {
		return essentials.AddCtx("write dataset: insert into "+collection, err)
	}
	return nil
}

func stringValue(v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}
