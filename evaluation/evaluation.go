/*
Package evaluation measures how well a tree classifies a dataset whose
labels are known.
*/
package evaluation

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lordrook/J48/dataset"
	"github.com/lordrook/J48/tree"
	"github.com/unixpickle/essentials"
	"golang.org/x/exp/slices"
)

// unknownLabel stands for tree.Unknown in reports
const unknownLabel = "?"

// Outcome holds the actual label of a record and the one predicted for it
type Outcome struct {
	Actual    string
	Predicted string
}

// Miss returns whether the prediction was wrong, Unknown included
func (o Outcome) Miss() bool {
	return o.Predicted == tree.Unknown || o.Predicted != o.Actual
}

// Results aggregates the outcomes of classifying every record of a dataset
type Results struct {
	Total    int
	Correct  int
	Unknown  int
	Outcomes []Outcome

	labels    []string
	confusion map[string]map[string]int
}

/*
Evaluate takes a context, a tree, a dataset holding the tree's target and
the number of goroutines to classify with (0 for one per CPU), and returns
the results of classifying every record of the dataset with the tree.
*/
func Evaluate(ctx context.Context, t *tree.Tree, ds *dataset.Dataset, parallelism int) (*Results, error) {
	target := t.Target().Name()
	if _, ok := ds.Header().Index(target); !ok {
		return nil, fmt.Errorf("dataset has no column for target %s", target)
	}
	outcomes := make([]Outcome, ds.Len())
	errs := make([]error, ds.Len())
	essentials.ConcurrentMap(parallelism, ds.Len(), func(i int) {
		r := ds.Record(i)
		actual, _ := r.Value(target)
		predicted, err := t.Classify(ctx, r)
		outcomes[i] = Outcome{actual, predicted}
		errs[i] = err
	})
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("classifying record %d: %v", i+1, err)
		}
	}
	return newResults(outcomes), nil
}

func newResults(outcomes []Outcome) *Results {
	r := &Results{Total: len(outcomes), Outcomes: outcomes, confusion: make(map[string]map[string]int)}
	seen := make(map[string]bool)
	for _, o := range outcomes {
		predicted := o.Predicted
		switch {
		case predicted == tree.Unknown:
			r.Unknown++
			predicted = unknownLabel
		case !o.Miss():
			r.Correct++
		}
		if r.confusion[o.Actual] == nil {
			r.confusion[o.Actual] = make(map[string]int)
		}
		r.confusion[o.Actual][predicted]++
		for _, l := range []string{o.Actual, o.Predicted} {
			if l != tree.Unknown && !seen[l] {
				seen[l] = true
				r.labels = append(r.labels, l)
			}
		}
	}
	slices.Sort(r.labels)
	return r
}

// Accuracy returns the fraction of records classified correctly, 0 for no records
func (r *Results) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Labels returns the sorted labels found either as actual or predicted label
func (r *Results) Labels() []string {
	return append([]string(nil), r.labels...)
}

// Confusion returns how many records with the actual label were classified
// as the predicted one. Pass tree.Unknown to count Unknown outcomes.
func (r *Results) Confusion(actual, predicted string) int {
	if predicted == tree.Unknown {
		predicted = unknownLabel
	}
	return r.confusion[actual][predicted]
}

/*
ConfusionMatrix returns the confusion matrix as tab separated text: a row
per actual label and a column per predicted label, plus a last column for
Unknown outcomes when there are any.
*/
func (r *Results) ConfusionMatrix() string {
	columns := r.Labels()
	if r.Unknown > 0 {
		columns = append(columns, unknownLabel)
	}
	var b strings.Builder
	b.WriteString("actual\\predicted")
	for _, c := range columns {
		fmt.Fprintf(&b, "\t%s", c)
	}
	b.WriteString("\n")
	for _, actual := range r.labels {
		b.WriteString(actual)
		for _, c := range columns {
			fmt.Fprintf(&b, "\t%d", r.confusion[actual][c])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Results) String() string {
	return fmt.Sprintf("accuracy %.4f (%d/%d), %d unknown", r.Accuracy(), r.Correct, r.Total, r.Unknown)
}

/*
WriteCSV writes a row per outcome to the writer with the actual label, the
predicted one and a '+' in a third column when the prediction missed.
*/
func (r *Results) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	err := cw.Write([]string{"actual", "predicted", "error"})
	if err != nil {
		return err
	}
	for _, o := range r.Outcomes {
		predicted := o.Predicted
		if predicted == tree.Unknown {
			predicted = unknownLabel
		}
		miss := ""
		if o.Miss() {
			miss = "+"
		}
		if err = cw.Write([]string{o.Actual, predicted, miss}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
