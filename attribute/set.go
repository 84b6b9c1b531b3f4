package attribute

// Set is an ordered collection of attributes with unique names. Sets are
// never modified: Without returns a new set and leaves the receiver intact,
// so sibling subtrees can share the set of their parent.
type Set struct {
	attributes []Attribute
}

// NewSet returns a set with the given attributes in the given order.
// Attributes whose name repeats an earlier one are ignored.
func NewSet(attributes ...Attribute) Set {
	seen := make(map[string]bool, len(attributes))
	as := make([]Attribute, 0, len(attributes))
	for _, a := range attributes {
		if a == nil || seen[a.Name()] {
			continue
		}
		seen[a.Name()] = true
		as = append(as, a)
	}
	return Set{as}
}

// Len returns the number of attributes in the set
func (s Set) Len() int {
	return len(s.attributes)
}

// Attributes returns the attributes in the set in order
func (s Set) Attributes() []Attribute {
	return append([]Attribute(nil), s.attributes...)
}

// Names returns the names of the attributes in the set in order
func (s Set) Names() []string {
	names := make([]string, len(s.attributes))
	for i, a := range s.attributes {
		names[i] = a.Name()
	}
	return names
}

// Get returns the attribute with the given name and whether it was found
func (s Set) Get(name string) (Attribute, bool) {
	for _, a := range s.attributes {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// Target returns the attribute of the set marked as target, if any
func (s Set) Target() (Attribute, bool) {
	for _, a := range s.attributes {
		if a.Target() {
			return a, true
		}
	}
	return nil, false
}

// Without returns a new set with the attributes of s except the one with
// the given name.
func (s Set) Without(name string) Set {
	as := make([]Attribute, 0, len(s.attributes))
	for _, a := range s.attributes {
		if a.Name() != name {
			as = append(as, a)
		}
	}
	return Set{as}
}
