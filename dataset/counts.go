package dataset

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
LabelCounts holds how many times each label occurs in a collection of
records. Labels are kept in order of first appearance, which is the order
used to break ties between equally frequent labels.
*/
type LabelCounts struct {
	counts *linkedhashmap.Map
	total  int
}

// NewLabelCounts returns empty label counts
func NewLabelCounts() *LabelCounts {
	return &LabelCounts{counts: linkedhashmap.New()}
}

// Add increments the count of the given label by n
func (lc *LabelCounts) Add(label string, n int) {
	c, _ := lc.counts.Get(label)
	current, _ := c.(int)
	lc.counts.Put(label, current+n)
	lc.total += n
}

// Count returns how many times the label was counted
func (lc *LabelCounts) Count(label string) int {
	c, ok := lc.counts.Get(label)
	if !ok {
		return 0
	}
	return c.(int)
}

// Labels returns the counted labels in order of first appearance
func (lc *LabelCounts) Labels() []string {
	keys := lc.counts.Keys()
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = k.(string)
	}
	return labels
}

// Counts returns the counts aligned with Labels
func (lc *LabelCounts) Counts() []int {
	values := lc.counts.Values()
	counts := make([]int, len(values))
	for i, v := range values {
		counts[i] = v.(int)
	}
	return counts
}

// Len returns the number of distinct labels
func (lc *LabelCounts) Len() int {
	return lc.counts.Size()
}

// Total returns the sum of all counts
func (lc *LabelCounts) Total() int {
	return lc.total
}

/*
Majority returns the most frequent label, the one appearing first among
those tied for the highest count. It returns the empty string when nothing
was counted.
*/
func (lc *LabelCounts) Majority() string {
	var majority string
	best := 0
	it := lc.counts.Iterator()
	for it.Next() {
		if c := it.Value().(int); c > best {
			best = c
			majority = it.Key().(string)
		}
	}
	return majority
}

/*
Merge returns new label counts adding up the receiver and the given ones.
Labels keep their order of first appearance across the receiver and then
each of the others in turn.
*/
func (lc *LabelCounts) Merge(others ...*LabelCounts) *LabelCounts {
	result := NewLabelCounts()
	for _, c := range append([]*LabelCounts{lc}, others...) {
		it := c.counts.Iterator()
		for it.Next() {
			result.Add(it.Key().(string), it.Value().(int))
		}
	}
	return result
}
