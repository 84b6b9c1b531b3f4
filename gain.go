package j48

import (
	"context"
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

/*
GainResult represents the partition of a dataset on an attribute along with
the information gain it achieves on the target labels.

For discrete attributes Values holds the distinct values observed on the
dataset, in order of first appearance, and Subsets the records holding each
of them. For continuous attributes Threshold holds the chosen threshold and
Subsets holds the records whose value is below or equal to it followed by
those above it. Counts and Entropies are aligned with Subsets.
*/
type GainResult struct {
	Attribute     attribute.Attribute
	Gain          float64
	Threshold     string
	Values        []string
	Subsets       []*dataset.Dataset
	Counts        []*dataset.LabelCounts
	Entropies     []float64
	ParentEntropy float64
	N             int
}

// Continuous returns whether the result partitions on a threshold
func (g *GainResult) Continuous() bool {
	return g.Attribute.Continuous()
}

/*
Entropy takes a dataset and returns the entropy in bits of its target
labels: 0 when every record holds the same label. It returns
ErrEmptyDataset for a dataset without records.
*/
func Entropy(ds *dataset.Dataset) (float64, error) {
	if ds.Len() == 0 {
		return 0, ErrEmptyDataset
	}
	lc := ds.LabelCounts()
	return entropy(lc.Counts(), lc.Total()), nil
}

// entropy adds up terms in ascending count order, so any arrangement of the
// same counts yields the same bits.
func entropy(counts []int, total int) float64 {
	cs := append([]int(nil), counts...)
	slices.Sort(cs)
	var result float64
	n := float64(total)
	for _, c := range cs {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		result -= p * math.Log2(p)
	}
	return result
}

/*
Gain takes a context, a dataset, an attribute and the entropy of the dataset
and returns the GainResult of partitioning the dataset on the attribute.

A continuous attribute is partitioned on the candidate threshold achieving
the highest gain. Candidates are the values found right before a change of
label once records are sorted by value; among equal gains the smallest
threshold wins. Thresholds leaving one side empty are never chosen, and when
there is no valid candidate Gain returns a nil result.
*/
func Gain(ctx context.Context, ds *dataset.Dataset, a attribute.Attribute, parentEntropy float64) (*GainResult, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if a.Continuous() {
		return continuousGain(ctx, ds, a, parentEntropy)
	}
	return discreteGain(ds, a, parentEntropy), nil
}

func discreteGain(ds *dataset.Dataset, a attribute.Attribute, parentEntropy float64) *GainResult {
	values, subsets := ds.Partition(a)
	g := &GainResult{
		Attribute:     a,
		Gain:          parentEntropy,
		Values:        values,
		Subsets:       subsets,
		ParentEntropy: parentEntropy,
		N:             ds.Len(),
	}
	n := float64(ds.Len())
	for _, s := range subsets {
		lc := s.LabelCounts()
		e := entropy(lc.Counts(), lc.Total())
		g.Counts = append(g.Counts, lc)
		g.Entropies = append(g.Entropies, e)
		g.Gain -= float64(s.Len()) / n * e
	}
	return g
}

type point struct {
	value decimal.Decimal
	raw   string
	label string
}

func comparePoints(a, b interface{}) int {
	return a.(point).value.Cmp(b.(point).value)
}

func continuousGain(ctx context.Context, ds *dataset.Dataset, a attribute.Attribute, parentEntropy float64) (*GainResult, error) {
	target := ds.Target().Name()
	points := make([]point, 0, ds.Len())
	totals := make(map[string]int)
	for _, r := range ds.Records() {
		raw, _ := r.Value(a.Name())
		d, err := attribute.ParseDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %s: %v", ErrInvalidContinuousValue, a.Name(), err)
		}
		label, _ := r.Value(target)
		points = append(points, point{d, raw, label})
		totals[label]++
	}
	slices.SortStableFunc(points, func(x, y point) bool {
		return x.value.LessThan(y.value)
	})
	candidates := treeset.NewWith(comparePoints)
	for i := 0; i+1 < len(points); i++ {
		if points[i].label != points[i+1].label {
			candidates.Add(points[i])
		}
	}
	n := len(points)
	below := make(map[string]int)
	above := make(map[string]int)
	var best *point
	var bestGain float64
	j := 0
	for _, c := range candidates.Values() {
		t := c.(point)
		for j < n && attribute.BelowOrEqual(points[j].value, t.value) {
			below[points[j].label]++
			j++
		}
		if j == n {
			break
		}
		for l, total := range totals {
			above[l] = total - below[l]
		}
		g := parentEntropy -
			float64(j)/float64(n)*entropy(countsOf(below), j) -
			float64(n-j)/float64(n)*entropy(countsOf(above), n-j)
		if best == nil || g > bestGain {
			best = &t
			bestGain = g
		}
	}
	if best == nil {
		return nil, nil
	}
	result := &GainResult{
		Attribute:     a,
		Gain:          bestGain,
		Threshold:     best.raw,
		ParentEntropy: parentEntropy,
		N:             n,
	}
	for _, isAbove := range []bool{false, true} {
		c, err := attribute.NewThresholdCriterion(a, best.raw, isAbove)
		if err != nil {
			return nil, err
		}
		s, err := ds.SubsetWith(ctx, c)
		if err != nil {
			return nil, err
		}
		lc := s.LabelCounts()
		result.Subsets = append(result.Subsets, s)
		result.Counts = append(result.Counts, lc)
		result.Entropies = append(result.Entropies, entropy(lc.Counts(), lc.Total()))
	}
	return result, nil
}

func countsOf(m map[string]int) []int {
	counts := make([]int, 0, len(m))
	for _, c := range m {
		counts = append(counts, c)
	}
	return counts
}

/*
MaxGain takes a context, a dataset, an attribute set and the entropy of the
dataset and returns the GainResult with the highest gain among the
attributes of the set, skipping the target. Attributes are evaluated in the
order of the set and the first one wins ties. It returns a nil result when
no attribute can partition the dataset.
*/
func MaxGain(ctx context.Context, ds *dataset.Dataset, attrs attribute.Set, parentEntropy float64) (*GainResult, error) {
	var best *GainResult
	for _, a := range attrs.Attributes() {
		if a.Target() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := Gain(ctx, ds, a, parentEntropy)
		if err != nil {
			return nil, err
		}
		if g != nil && (best == nil || g.Gain > best.Gain) {
			best = g
		}
	}
	return best, nil
}
