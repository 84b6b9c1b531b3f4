/*
Package json serializes trees as self-contained JSON documents: the
attributes the tree splits on are embedded next to the nodes, so a tree can
be read back and used to classify without any other metadata.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lordrook/J48/tree"
)

/*
TreeEncodeDecoder is an interface for objects
that allow encoding trees into slices of
bytes and decoding them back to trees.
*/
type TreeEncodeDecoder interface {

	//Encode receives a *tree.Tree
	//and returns a slice of bytes with the tree
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(*tree.Tree) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a *tree.Tree decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (*tree.Tree, error)
}

type treeEncodeDecoder struct{}

type jsonTree struct {
	Target     string           `json:"target"`
	Attributes []*jsonAttribute `json:"attributes"`
	Root       *node            `json:"root"`
}

// New returns a TreeEncodeDecoder using the JSON representation of trees
func New() TreeEncodeDecoder {
	return treeEncodeDecoder{}
}

func (treeEncodeDecoder) Encode(t *tree.Tree) ([]byte, error) {
	return Encode(t)
}

func (treeEncodeDecoder) Decode(data []byte) (*tree.Tree, error) {
	return Decode(data)
}

/*
Encode takes a tree and returns its JSON representation: an object with
the following fields:
* "target": the name of the attribute the tree predicts
* "attributes": the attributes the tree splits on plus the target, each as
  an object with a "name", a "type" ("discrete" or "continuous") and, for
  discrete attributes declaring them, the list of available "values"
* "root": the root node. Every node has a "type": "leaf" nodes carry their
  "label"; "discrete" and "continuous" nodes carry the "attribute" they split
  on and their "branches". Discrete branches hold the "value" leading to
  their "node" and are sorted by value. Continuous nodes carry the
  "threshold" and two branches: the one for values below or equal to it
  and the one for values above it.
*/
func Encode(t *tree.Tree) ([]byte, error) {
	root, err := encodeNode(t.Root())
	if err != nil {
		return nil, err
	}
	jt := &jsonTree{
		Target:     t.Target().Name(),
		Attributes: encodeAttributes(t.Attributes()),
		Root:       root,
	}
	return json.Marshal(jt)
}

// Decode takes a tree encoded with Encode and returns it
func Decode(data []byte) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.Unmarshal(data, jt)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling tree: %v", err)
	}
	attrs, err := decodeAttributes(jt.Attributes, jt.Target)
	if err != nil {
		return nil, fmt.Errorf("decoding tree attributes: %v", err)
	}
	root, err := decodeNode(jt.Root, attrs)
	if err != nil {
		return nil, fmt.Errorf("decoding tree nodes: %v", err)
	}
	target, _ := attrs.Target()
	return tree.New(root, target), nil
}

/*
WriteJSONTree takes a pointer to a tree.Tree and an io.Writer and
serializes the given tree as JSON onto the io.Writer as Encode does.
*/
func WriteJSONTree(t *tree.Tree, w io.Writer) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

/*
ReadJSONTree takes an io.Reader and returns the tree serialized on it
as Encode does.
*/
func ReadJSONTree(r io.Reader) (*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %v", err)
	}
	return Decode(data)
}
