/*
Package tree provides the decision trees built by the j48 package and the
means to classify records with them.
*/
package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/lordrook/J48/attribute"
)

/*
Unknown is the result of classifying a record that reaches a discrete node
without a child for its value, or that lacks a usable value for an attribute
the tree asks about. Target labels are never blank, so Unknown never
collides with a real label.
*/
const Unknown = ""

// Tree represents a decision tree: its root node and the
// target attribute whose labels it predicts.
type Tree struct {
	root   Node
	target attribute.Attribute
}

// New takes a root node and a target attribute and returns
// a tree composed of the nodes under the root that predicts
// the target.
func New(root Node, target attribute.Attribute) *Tree {
	return &Tree{root, target}
}

// Root returns the root node of the tree
func (t *Tree) Root() Node {
	return t.root
}

// Target returns the attribute predicted by the tree
func (t *Tree) Target() attribute.Attribute {
	return t.target
}

// Classify takes a sample and returns the label the tree predicts for it,
// which may be Unknown. An error is returned only if the sample fails to
// provide a value or the context is done.
func (t *Tree) Classify(ctx context.Context, s attribute.Sample) (string, error) {
	if t == nil {
		return Unknown, fmt.Errorf("nil tree cannot classify samples")
	}
	return Classify(ctx, t.root, s)
}

/*
Classify takes a node and a sample and walks from the node down to a leaf,
following at each node the child selected by the sample's value for the
node's attribute. It returns the label of the leaf reached, or Unknown when
no child matches the sample.
*/
func Classify(ctx context.Context, n Node, s attribute.Sample) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Unknown, err
		}
		switch node := n.(type) {
		case *Leaf:
			return node.label, nil
		case *DiscreteNode:
			v, ok, err := s.ValueFor(ctx, node.attribute)
			if err != nil {
				return Unknown, err
			}
			if !ok {
				return Unknown, nil
			}
			if n, ok = node.children[v]; !ok {
				return Unknown, nil
			}
		case *ContinuousNode:
			v, ok, err := s.ValueFor(ctx, node.attribute)
			if err != nil {
				return Unknown, err
			}
			if !ok {
				return Unknown, nil
			}
			if n, ok = node.Route(v); !ok {
				return Unknown, nil
			}
		default:
			return Unknown, fmt.Errorf("cannot classify with node of type %T", n)
		}
	}
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the given context times out or is cancelled, the context
// error is returned. If the call to the function returns an
// error, the traversing is aborted and the error is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, Node) error) error {
	return traverse(ctx, t.root, bottomup, f)
}

func traverse(ctx context.Context, n Node, bottomup bool, f func(context.Context, Node) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		if err = f(ctx, n); err != nil {
			return err
		}
	}
	for _, sn := range n.Children() {
		if err = traverse(ctx, sn, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		return f(ctx, n)
	}
	return nil
}

// Attributes returns the attributes the tree splits on, in order of first
// appearance from the root, followed by the target.
func (t *Tree) Attributes() attribute.Set {
	var attrs []attribute.Attribute
	t.Traverse(context.Background(), false, func(_ context.Context, n Node) error {
		switch n := n.(type) {
		case *DiscreteNode:
			attrs = append(attrs, n.attribute)
		case *ContinuousNode:
			attrs = append(attrs, n.attribute)
		}
		return nil
	})
	return attribute.NewSet(append(attrs, t.target)...)
}

// Depth returns the number of edges on the longest path from the root to a leaf
func (t *Tree) Depth() int {
	return depth(t.root)
}

func depth(n Node) int {
	d := 0
	for _, c := range n.Children() {
		if cd := depth(c) + 1; cd > d {
			d = cd
		}
	}
	return d
}

// Leaves returns the number of leaves of the tree
func (t *Tree) Leaves() int {
	count := 0
	t.Traverse(context.Background(), false, func(_ context.Context, n Node) error {
		if _, ok := n.(*Leaf); ok {
			count++
		}
		return nil
	})
	return count
}

func (t *Tree) String() string {
	if l, ok := t.root.(*Leaf); ok {
		return fmt.Sprintf("{ %s }\n", l.label)
	}
	return fmt.Sprintf("[%s]\n%s", t.root, branchesString(t.root))
}

func branchesString(n Node) string {
	var conditions []string
	switch n := n.(type) {
	case *DiscreteNode:
		for _, v := range n.values {
			conditions = append(conditions, fmt.Sprintf("%s is %s", n.attribute.Name(), v))
		}
	case *ContinuousNode:
		conditions = []string{
			fmt.Sprintf("%s <= %s", n.attribute.Name(), n.raw),
			fmt.Sprintf("%s > %s", n.attribute.Name(), n.raw),
		}
	}
	var result strings.Builder
	children := n.Children()
	for i, c := range children {
		if l, ok := c.(*Leaf); ok {
			fmt.Fprintf(&result, "|__%s: %s\n", conditions[i], l.label)
			continue
		}
		fmt.Fprintf(&result, "|__%s\n", conditions[i])
		for _, line := range strings.Split(branchesString(c), "\n") {
			if len(line) == 0 {
				continue
			}
			if i == len(children)-1 {
				fmt.Fprintf(&result, "   %s\n", line)
			} else {
				fmt.Fprintf(&result, "|  %s\n", line)
			}
		}
	}
	return result.String()
}
