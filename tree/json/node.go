package json

import (
	"fmt"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/tree"
	"golang.org/x/exp/slices"
)

const (
	leafType       = "leaf"
	discreteType   = "discrete"
	continuousType = "continuous"
)

type node struct {
	Type      string    `json:"type"`
	Label     string    `json:"label,omitempty"`
	Attribute string    `json:"attribute,omitempty"`
	Threshold string    `json:"threshold,omitempty"`
	Branches  []*branch `json:"branches,omitempty"`
}

type branch struct {
	Value string `json:"value,omitempty"`
	Node  *node  `json:"node"`
}

type jsonAttribute struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Values []string `json:"values,omitempty"`
}

// encodeNode returns the serializable form of n. Discrete branches are
// sorted by value.
func encodeNode(n tree.Node) (*node, error) {
	switch n := n.(type) {
	case *tree.Leaf:
		return &node{Type: leafType, Label: n.Label()}, nil
	case *tree.DiscreteNode:
		jn := &node{Type: discreteType, Attribute: n.Attribute().Name()}
		values := n.Values()
		slices.Sort(values)
		for _, v := range values {
			c, _ := n.Child(v)
			jc, err := encodeNode(c)
			if err != nil {
				return nil, err
			}
			jn.Branches = append(jn.Branches, &branch{Value: v, Node: jc})
		}
		return jn, nil
	case *tree.ContinuousNode:
		jn := &node{Type: continuousType, Attribute: n.Attribute().Name(), Threshold: n.Threshold()}
		for _, c := range n.Children() {
			jc, err := encodeNode(c)
			if err != nil {
				return nil, err
			}
			jn.Branches = append(jn.Branches, &branch{Node: jc})
		}
		return jn, nil
	}
	return nil, fmt.Errorf("cannot encode node of type %T", n)
}

func decodeNode(jn *node, attrs attribute.Set) (tree.Node, error) {
	if jn == nil {
		return nil, fmt.Errorf("missing node")
	}
	if jn.Type == leafType {
		if jn.Label == "" {
			return nil, fmt.Errorf("leaf without label")
		}
		return tree.NewLeaf(jn.Label), nil
	}
	a, ok := attrs.Get(jn.Attribute)
	if !ok {
		return nil, fmt.Errorf("%s node on undeclared attribute %q", jn.Type, jn.Attribute)
	}
	children := make([]tree.Node, 0, len(jn.Branches))
	for _, b := range jn.Branches {
		if b == nil {
			return nil, fmt.Errorf("%s node on %s: missing branch", jn.Type, jn.Attribute)
		}
		c, err := decodeNode(b.Node, attrs)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	switch jn.Type {
	case discreteType:
		if a.Continuous() {
			return nil, fmt.Errorf("discrete node on continuous attribute %s", a.Name())
		}
		values := make([]string, len(jn.Branches))
		for i, b := range jn.Branches {
			values[i] = b.Value
		}
		return tree.NewDiscreteNode(a, values, children)
	case continuousType:
		if !a.Continuous() {
			return nil, fmt.Errorf("continuous node on discrete attribute %s", a.Name())
		}
		if len(children) != 2 {
			return nil, fmt.Errorf("continuous node on %s: expected 2 branches, got %d", a.Name(), len(children))
		}
		return tree.NewContinuousNode(a, jn.Threshold, children[0], children[1])
	}
	return nil, fmt.Errorf("unknown node type %q", jn.Type)
}

func encodeAttributes(attrs attribute.Set) []*jsonAttribute {
	var result []*jsonAttribute
	for _, a := range attrs.Attributes() {
		ja := &jsonAttribute{Name: a.Name(), Type: discreteType}
		if a.Continuous() {
			ja.Type = continuousType
		} else if da, ok := a.(*attribute.DiscreteAttribute); ok {
			ja.Values = da.AvailableValues()
		}
		result = append(result, ja)
	}
	return result
}

func decodeAttributes(jas []*jsonAttribute, target string) (attribute.Set, error) {
	var attrs []attribute.Attribute
	found := false
	for _, ja := range jas {
		switch ja.Type {
		case continuousType:
			if ja.Name == target {
				return attribute.Set{}, fmt.Errorf("target attribute %s must be discrete", target)
			}
			attrs = append(attrs, attribute.NewContinuousAttribute(ja.Name))
		case discreteType:
			da := attribute.NewDiscreteAttribute(ja.Name, ja.Values...)
			if ja.Name == target {
				da.MarkAsTarget()
				found = true
			}
			attrs = append(attrs, da)
		default:
			return attribute.Set{}, fmt.Errorf("attribute %s: unknown type %q", ja.Name, ja.Type)
		}
	}
	if !found {
		return attribute.Set{}, fmt.Errorf("target attribute %q is not declared", target)
	}
	return attribute.NewSet(attrs...), nil
}
