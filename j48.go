/*
Package j48 grows C4.5 decision trees: it measures the information gain of
splitting a dataset on each attribute, picks the best split, and recurses
until the labels at a node are pure, the split is pruned or no attribute
is left to split on.
*/
package j48

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset"
	"github.com/lordrook/J48/tree"
)

// Logger is the interface the builder reports its progress through
type Logger interface {
	Logf(format string, a ...interface{})
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...interface{}) {}

/*
Builder grows trees from datasets. Its configuration is set by the
options given to New and does not change afterwards, so a Builder can
build several trees, even concurrently.
*/
type Builder struct {
	pruner         Pruner
	minimumEntropy float64
	maxDepth       int
	parallelism    int
	logger         Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithPruner sets the pruner deciding on continuous splits. MDLPruner is
// used by default.
func WithPruner(p Pruner) Option {
	return func(b *Builder) {
		b.pruner = p
	}
}

// MinimumEntropy sets the entropy at or below which a node becomes a leaf
// without further splitting. It is 0 by default.
func MinimumEntropy(e float64) Option {
	return func(b *Builder) {
		b.minimumEntropy = e
	}
}

// MaxDepth limits the depth of the trees, nodes at that depth becoming
// majority leaves. 0, the default, means no limit.
func MaxDepth(d int) Option {
	return func(b *Builder) {
		b.maxDepth = d
	}
}

// Parallelism sets how many subtrees may be grown at the same time. Values
// below 2 grow subtrees one after the other.
func Parallelism(n int) Option {
	return func(b *Builder) {
		b.parallelism = n
	}
}

// WithLogger sets the logger the builder reports splits and leaves to
func WithLogger(l Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// New returns a Builder configured with the given options
func New(options ...Option) *Builder {
	b := &Builder{pruner: MDLPruner(), logger: nopLogger{}}
	for _, o := range options {
		o(b)
	}
	if b.pruner == nil {
		b.pruner = NoPruner()
	}
	if b.logger == nil {
		b.logger = nopLogger{}
	}
	return b
}

type growth struct {
	*Builder
	target attribute.Attribute
	sem    chan struct{}
}

/*
Build takes a context, a dataset and an attribute set and returns the tree
predicting the target of the set from its other attributes.

The dataset must hold records, a column for every attribute of the set and
the target of the set must be the target of the dataset. Target labels must
not be blank and continuous values must be decimal numbers. Violations are
reported as errors before any node is grown.

Discrete attributes are split on at most once along a path from the root,
while continuous attributes may be split on again below with a different
threshold. The resulting tree only depends on the dataset, the attribute set
and the builder's options.
*/
func (b *Builder) Build(ctx context.Context, ds *dataset.Dataset, attrs attribute.Set) (*tree.Tree, error) {
	target, err := validate(ds, attrs)
	if err != nil {
		return nil, err
	}
	g := &growth{Builder: b, target: target}
	if b.parallelism > 1 {
		g.sem = make(chan struct{}, b.parallelism-1)
	}
	root, err := g.grow(ctx, ds, attrs.Without(target.Name()), 0)
	if err != nil {
		return nil, err
	}
	return tree.New(root, target), nil
}

func validate(ds *dataset.Dataset, attrs attribute.Set) (attribute.Attribute, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	target, ok := attrs.Target()
	if !ok || ds.Target() == nil || ds.Target().Name() != target.Name() {
		return nil, ErrMissingTarget
	}
	for _, a := range attrs.Attributes() {
		if _, ok := ds.Header().Index(a.Name()); !ok {
			return nil, fmt.Errorf("attribute %s has no column in the dataset", a.Name())
		}
	}
	for i, r := range ds.Records() {
		if label, _ := r.Value(target.Name()); strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("%w: record %d", ErrBlankLabel, i+1)
		}
		for _, a := range attrs.Attributes() {
			if !a.Continuous() {
				continue
			}
			v, _ := r.Value(a.Name())
			if _, err := attribute.ParseDecimal(v); err != nil {
				return nil, fmt.Errorf("%w: record %d: attribute %s: %v", ErrInvalidContinuousValue, i+1, a.Name(), err)
			}
		}
	}
	return target, nil
}

func (g *growth) grow(ctx context.Context, ds *dataset.Dataset, attrs attribute.Set, depth int) (tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	counts := ds.LabelCounts()
	h := entropy(counts.Counts(), counts.Total())
	if h <= g.minimumEntropy {
		return g.leaf(counts, depth, "entropy %.4f", h), nil
	}
	if g.maxDepth > 0 && depth >= g.maxDepth {
		return g.leaf(counts, depth, "maximum depth"), nil
	}
	best, err := MaxGain(ctx, ds, attrs, h)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return g.leaf(counts, depth, "no attribute to split on"), nil
	}
	if !best.Continuous() {
		g.logger.Logf("%ssplitting %d records on %s into %d branches, gain %.4f", indent(depth), ds.Len(), best.Attribute.Name(), len(best.Subsets), best.Gain)
		children, err := g.growAll(ctx, best.Subsets, attrs.Without(best.Attribute.Name()), depth+1)
		if err != nil {
			return nil, err
		}
		dn, err := tree.NewDiscreteNode(best.Attribute, best.Values, children)
		if err != nil {
			return nil, err
		}
		return dn, nil
	}
	if g.pruner.Prune(best) {
		return g.leaf(best.Counts[0].Merge(best.Counts[1]), depth, "pruned split on %s <= %s, gain %.4f", best.Attribute.Name(), best.Threshold, best.Gain), nil
	}
	g.logger.Logf("%ssplitting %d records on %s <= %s, gain %.4f", indent(depth), ds.Len(), best.Attribute.Name(), best.Threshold, best.Gain)
	children, err := g.growAll(ctx, best.Subsets, attrs, depth+1)
	if err != nil {
		return nil, err
	}
	below, belowLeaf := children[0].(*tree.Leaf)
	above, aboveLeaf := children[1].(*tree.Leaf)
	if belowLeaf && aboveLeaf && below.Label() == above.Label() {
		g.logger.Logf("%smerging leaves on %s <= %s: %s", indent(depth), best.Attribute.Name(), best.Threshold, below.Label())
		return below, nil
	}
	cn, err := tree.NewContinuousNode(best.Attribute, best.Threshold, children[0], children[1])
	if err != nil {
		return nil, err
	}
	return cn, nil
}

// growAll grows a subtree per subset, handing subsets to new goroutines
// while the growth has free slots and growing the rest in place.
func (g *growth) growAll(ctx context.Context, subsets []*dataset.Dataset, attrs attribute.Set, depth int) ([]tree.Node, error) {
	nodes := make([]tree.Node, len(subsets))
	errs := make([]error, len(subsets))
	var wg sync.WaitGroup
	for i, s := range subsets {
		select {
		case g.sem <- struct{}{}:
			wg.Add(1)
			go func(i int, s *dataset.Dataset) {
				defer func() {
					<-g.sem
					wg.Done()
				}()
				nodes[i], errs[i] = g.grow(ctx, s, attrs, depth)
			}(i, s)
		default:
			nodes[i], errs[i] = g.grow(ctx, s, attrs, depth)
		}
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (g *growth) leaf(counts *dataset.LabelCounts, depth int, reason string, a ...interface{}) *tree.Leaf {
	label := counts.Majority()
	g.logger.Logf("%sleaf %s for %d records: %s", indent(depth), label, counts.Total(), fmt.Sprintf(reason, a...))
	return tree.NewLeaf(label)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
