package j48

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset"
)

var weatherNames = []string{"Weather", "Temperature", "Play"}

var weatherRows = [][]string{
	{"Sunny", "85", "No"},
	{"Sunny", "80", "No"},
	{"Overcast", "83", "Yes"},
	{"Rain", "70", "Yes"},
	{"Rain", "68", "Yes"},
	{"Rain", "65", "No"},
}

func load(t *testing.T, names []string, rows [][]string) *dataset.Dataset {
	ds, err := dataset.Load(names, rows)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func get(t *testing.T, ds *dataset.Dataset, name string) attribute.Attribute {
	a, ok := ds.Attributes().Get(name)
	if !ok {
		t.Fatalf("no attribute %s", name)
	}
	return a
}

func TestEntropy(t *testing.T) {
	testCases := []struct {
		labels   []string
		expected float64
	}{
		{[]string{"No", "No", "Yes", "Yes", "Yes", "No"}, 1.0},
		{[]string{"Yes", "Yes", "Yes"}, 0.0},
		{[]string{"A", "B", "C", "D"}, 2.0},
		{[]string{"Yes", "Yes", "No"}, 0.9183},
	}
	for _, tc := range testCases {
		var rows [][]string
		for _, l := range tc.labels {
			rows = append(rows, []string{l})
		}
		e, err := Entropy(load(t, []string{"Label"}, rows))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(e-tc.expected) > 1e-4 {
			t.Errorf("expected entropy %f for %v, got %f", tc.expected, tc.labels, e)
		}
	}
	_, err := Entropy(load(t, []string{"Label"}, nil))
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestEntropyIgnoresLabelOrder(t *testing.T) {
	a := load(t, []string{"Label"}, [][]string{{"x"}, {"y"}, {"y"}, {"z"}, {"z"}, {"z"}})
	b := load(t, []string{"Label"}, [][]string{{"z"}, {"y"}, {"z"}, {"x"}, {"z"}, {"y"}})
	ea, _ := Entropy(a)
	eb, _ := Entropy(b)
	if ea != eb {
		t.Errorf("expected identical entropies, got %v and %v", ea, eb)
	}
}

func TestDiscreteGain(t *testing.T) {
	ds := load(t, weatherNames, weatherRows)
	g, err := Gain(context.Background(), ds, get(t, ds, "Weather"), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g.Gain-0.541) > 1e-3 {
		t.Errorf("expected gain 0.541, got %f", g.Gain)
	}
	if len(g.Values) != 3 || g.Values[0] != "Sunny" || g.Values[2] != "Rain" {
		t.Errorf("unexpected values %v", g.Values)
	}
	total := 0
	for _, s := range g.Subsets {
		total += s.Len()
	}
	if total != ds.Len() {
		t.Errorf("expected subsets to cover %d records, got %d", ds.Len(), total)
	}
	if g.Counts[2].Count("Yes") != 2 || g.Counts[2].Count("No") != 1 {
		t.Errorf("unexpected Rain counts %v %v", g.Counts[2].Labels(), g.Counts[2].Counts())
	}
}

func TestContinuousGain(t *testing.T) {
	ds := load(t, weatherNames, weatherRows)
	g, err := Gain(context.Background(), ds, get(t, ds, "Temperature"), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if g.Threshold != "65" {
		t.Errorf("expected the smallest of the tied thresholds 65 and 83, got %s", g.Threshold)
	}
	if math.Abs(g.Gain-0.1909) > 1e-3 {
		t.Errorf("expected gain 0.1909, got %f", g.Gain)
	}
	if g.Subsets[0].Len() != 1 || g.Subsets[1].Len() != 5 {
		t.Errorf("expected 1 record below and 5 above, got %d and %d", g.Subsets[0].Len(), g.Subsets[1].Len())
	}
}

func TestContinuousGainComparesNumerically(t *testing.T) {
	ds := load(t, []string{"X", "Label"}, [][]string{
		{"9", "A"},
		{"10", "B"},
		{"100", "B"},
		{"2", "A"},
	})
	e, _ := Entropy(ds)
	g, err := Gain(context.Background(), ds, get(t, ds, "X"), e)
	if err != nil {
		t.Fatal(err)
	}
	if g.Threshold != "9" {
		t.Errorf("expected threshold 9, got %s", g.Threshold)
	}
	if g.Gain != 1.0 {
		t.Errorf("expected perfect split, got gain %f", g.Gain)
	}
}

func TestContinuousGainWithoutCandidates(t *testing.T) {
	testCases := [][][]string{
		{{"1", "A"}, {"2", "A"}, {"3", "A"}},
		{{"1", "A"}, {"1", "B"}, {"1", "A"}},
		{{"1", "A"}, {"2", "A"}, {"2", "B"}},
	}
	for _, rows := range testCases {
		ds := load(t, []string{"X", "Label"}, rows)
		e, _ := Entropy(ds)
		g, err := Gain(context.Background(), ds, get(t, ds, "X"), e)
		if err != nil {
			t.Fatal(err)
		}
		if g != nil {
			t.Errorf("expected no split for %v, got threshold %s", rows, g.Threshold)
		}
	}
}

func TestMaxGain(t *testing.T) {
	ds := load(t, weatherNames, weatherRows)
	ctx := context.Background()
	g, err := MaxGain(ctx, ds, ds.Attributes(), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if g.Attribute.Name() != "Weather" {
		t.Errorf("expected Weather to win, got %s", g.Attribute.Name())
	}
	g, err = MaxGain(ctx, ds, attribute.NewSet(ds.Target()), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if g != nil {
		t.Errorf("expected target not to be considered, got %s", g.Attribute.Name())
	}
}

func TestMaxGainTiesGoToFirstAttribute(t *testing.T) {
	names := []string{"W1", "W2", "Play"}
	rows := [][]string{
		{"a", "a", "No"},
		{"b", "b", "Yes"},
		{"a", "a", "No"},
		{"b", "b", "No"},
	}
	ds := load(t, names, rows)
	e, _ := Entropy(ds)
	ctx := context.Background()
	w1, w2 := get(t, ds, "W1"), get(t, ds, "W2")
	g, _ := MaxGain(ctx, ds, attribute.NewSet(w1, w2), e)
	if g.Attribute.Name() != "W1" {
		t.Errorf("expected W1, got %s", g.Attribute.Name())
	}
	g, _ = MaxGain(ctx, ds, attribute.NewSet(w2, w1), e)
	if g.Attribute.Name() != "W2" {
		t.Errorf("expected W2, got %s", g.Attribute.Name())
	}
}
