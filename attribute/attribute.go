/*
Package attribute describes the columns of a dataset: their names, whether
they hold discrete labels or continuous decimal values, and which of them is
the target a tree learns to predict.
*/
package attribute

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

/*
Attribute represents a named column that can be observed on a record.

Continuous reports whether the values of the attribute are decimal numbers
compared by magnitude; otherwise they are opaque labels compared by equality.
Target reports whether the attribute is the one a tree predicts. Valid takes
a raw value and returns an error describing why it cannot be held by the
attribute, or nil.
*/
type Attribute interface {
	Name() string
	Continuous() bool
	Target() bool
	Valid(value string) error
}

/*
DiscreteAttribute represents an attribute whose values are labels drawn from
a finite set. The set may be declared upfront through its available values,
in which case Valid rejects anything outside it.
*/
type DiscreteAttribute struct {
	name            string
	availableValues []string
	target          bool
}

/*
ContinuousAttribute represents an attribute whose values are decimal numbers.
*/
type ContinuousAttribute struct {
	name string
}

/*
NewDiscreteAttribute takes a name string and an optional list of available
values and returns a discrete attribute with them. An empty list of available
values accepts any non-blank value.
*/
func NewDiscreteAttribute(name string, availableValues ...string) *DiscreteAttribute {
	return &DiscreteAttribute{name: name, availableValues: availableValues}
}

/*
NewContinuousAttribute takes a name string and returns a continuous attribute
with the given name.
*/
func NewContinuousAttribute(name string) *ContinuousAttribute {
	return &ContinuousAttribute{name}
}

// Name returns the name of the attribute
func (da *DiscreteAttribute) Name() string {
	return da.name
}

// Continuous returns false
func (da *DiscreteAttribute) Continuous() bool {
	return false
}

// Target returns whether the attribute has been marked as the target
func (da *DiscreteAttribute) Target() bool {
	return da.target
}

/*
MarkAsTarget flags the attribute as the one to predict. The flag is set once
when the schema of a dataset is established and never cleared afterwards.
*/
func (da *DiscreteAttribute) MarkAsTarget() {
	da.target = true
}

/*
Valid returns nil when the value is non-blank and, if the attribute declares
available values, included in them. Otherwise it returns an error describing
the reason.
*/
func (da *DiscreteAttribute) Valid(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("discrete attribute %s got blank value", da.name)
	}
	if len(da.availableValues) == 0 {
		return nil
	}
	for _, av := range da.availableValues {
		if av == value {
			return nil
		}
	}
	return fmt.Errorf("discrete attribute %s got unknown value %q", da.name, value)
}

// AvailableValues returns the values declared for the attribute, if any
func (da *DiscreteAttribute) AvailableValues() []string {
	return append([]string(nil), da.availableValues...)
}

func (da *DiscreteAttribute) String() string {
	return da.name
}

// Name returns the name of the attribute
func (ca *ContinuousAttribute) Name() string {
	return ca.name
}

// Continuous returns true
func (ca *ContinuousAttribute) Continuous() bool {
	return true
}

// Target returns false: continuous attributes cannot be predicted
func (ca *ContinuousAttribute) Target() bool {
	return false
}

/*
Valid returns nil when the value parses as a decimal number, otherwise it
returns an error describing the reason.
*/
func (ca *ContinuousAttribute) Valid(value string) error {
	if _, err := ParseDecimal(value); err != nil {
		return fmt.Errorf("continuous attribute %s: %v", ca.name, err)
	}
	return nil
}

func (ca *ContinuousAttribute) String() string {
	return ca.name
}

/*
ParseDecimal takes the textual value of a continuous attribute and returns
it as an exact decimal. Surrounding whitespace is ignored.
*/
func ParseDecimal(value string) (decimal.Decimal, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return decimal.Decimal{}, fmt.Errorf("blank value is not a decimal number")
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not a decimal number", value)
	}
	return d, nil
}

/*
Infer takes a column name and its raw values and returns the attribute
describing it: a ContinuousAttribute when every non-blank value parses as a
decimal number and there is at least one such value, and a
DiscreteAttribute otherwise.
*/
func Infer(name string, values []string) Attribute {
	numeric := 0
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, err := ParseDecimal(v); err != nil {
			return NewDiscreteAttribute(name)
		}
		numeric++
	}
	if numeric == 0 {
		return NewDiscreteAttribute(name)
	}
	return NewContinuousAttribute(name)
}
