package tree

import (
	"fmt"

	"github.com/lordrook/J48/attribute"
	"github.com/shopspring/decimal"
)

/*
Node is a node of the tree. It is one of *Leaf, *DiscreteNode or
*ContinuousNode. Nodes are never modified once created.

Its Children method returns the nodes directly under it, in order.
*/
type Node interface {
	Children() []Node
	String() string
}

// Leaf is a node holding the label predicted for the records reaching it
type Leaf struct {
	label string
}

/*
DiscreteNode is a node splitting records on the value of a discrete
attribute, with one child per value observed while building the tree.
*/
type DiscreteNode struct {
	attribute attribute.Attribute
	values    []string
	children  map[string]Node
}

/*
ContinuousNode is a node splitting records on a threshold of a continuous
attribute: records with a value less than or equal to it go to the first
child, the rest to the second.
*/
type ContinuousNode struct {
	attribute attribute.Attribute
	raw       string
	threshold decimal.Decimal
	below     Node
	above     Node
}

// NewLeaf returns a leaf predicting the given label
func NewLeaf(label string) *Leaf {
	return &Leaf{label}
}

/*
NewDiscreteNode takes a discrete attribute, the values observed for it and
the child node for each of them, and returns a DiscreteNode. It returns an
error if values and children are not aligned or a value repeats.
*/
func NewDiscreteNode(a attribute.Attribute, values []string, children []Node) (*DiscreteNode, error) {
	if len(values) != len(children) {
		return nil, fmt.Errorf("discrete node on %s: %d values for %d children", a.Name(), len(values), len(children))
	}
	dn := &DiscreteNode{a, append([]string(nil), values...), make(map[string]Node, len(values))}
	for i, v := range values {
		if _, ok := dn.children[v]; ok {
			return nil, fmt.Errorf("discrete node on %s: repeated value %q", a.Name(), v)
		}
		if children[i] == nil {
			return nil, fmt.Errorf("discrete node on %s: nil child for value %q", a.Name(), v)
		}
		dn.children[v] = children[i]
	}
	return dn, nil
}

/*
NewContinuousNode takes a continuous attribute, a textual decimal threshold
and the children for the records below or equal to and above the threshold,
and returns a ContinuousNode. It returns an error if the threshold is not a
decimal number or a child is missing.
*/
func NewContinuousNode(a attribute.Attribute, threshold string, below, above Node) (*ContinuousNode, error) {
	t, err := attribute.ParseDecimal(threshold)
	if err != nil {
		return nil, fmt.Errorf("continuous node on %s: %v", a.Name(), err)
	}
	if below == nil || above == nil {
		return nil, fmt.Errorf("continuous node on %s: missing child", a.Name())
	}
	return &ContinuousNode{a, threshold, t, below, above}, nil
}

// Label returns the label predicted by the leaf
func (l *Leaf) Label() string {
	return l.label
}

// Children returns nil: leaves have no children
func (l *Leaf) Children() []Node {
	return nil
}

func (l *Leaf) String() string {
	return l.label
}

// Attribute returns the attribute the node splits on
func (dn *DiscreteNode) Attribute() attribute.Attribute {
	return dn.attribute
}

// Values returns the values with a child, in the order they were given
func (dn *DiscreteNode) Values() []string {
	return append([]string(nil), dn.values...)
}

// Child returns the child for the given value and whether there is one
func (dn *DiscreteNode) Child(value string) (Node, bool) {
	n, ok := dn.children[value]
	return n, ok
}

// Children returns the children aligned with Values
func (dn *DiscreteNode) Children() []Node {
	children := make([]Node, len(dn.values))
	for i, v := range dn.values {
		children[i] = dn.children[v]
	}
	return children
}

func (dn *DiscreteNode) String() string {
	return dn.attribute.Name()
}

// Attribute returns the attribute the node splits on
func (cn *ContinuousNode) Attribute() attribute.Attribute {
	return cn.attribute
}

// Threshold returns the threshold as it appeared in the training data
func (cn *ContinuousNode) Threshold() string {
	return cn.raw
}

// BelowOrEqual returns the child for values less than or equal to the threshold
func (cn *ContinuousNode) BelowOrEqual() Node {
	return cn.below
}

// Above returns the child for values greater than the threshold
func (cn *ContinuousNode) Above() Node {
	return cn.above
}

// Children returns the below-or-equal child followed by the above one
func (cn *ContinuousNode) Children() []Node {
	return []Node{cn.below, cn.above}
}

/*
Route takes a raw value and returns the child it leads to. It returns false
if the value is not a decimal number.
*/
func (cn *ContinuousNode) Route(value string) (Node, bool) {
	d, err := attribute.ParseDecimal(value)
	if err != nil {
		return nil, false
	}
	if attribute.BelowOrEqual(d, cn.threshold) {
		return cn.below, true
	}
	return cn.above, true
}

func (cn *ContinuousNode) String() string {
	return fmt.Sprintf("%s <= %s", cn.attribute.Name(), cn.raw)
}
