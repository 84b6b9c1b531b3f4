package attribute

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

/*
Criterion represents a constraint on an attribute.

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample's value for the attribute satisfies the criterion.

Its Attribute method returns the attribute on which the criterion is applied.
*/
type Criterion interface {
	Attribute() Attribute
	SatisfiedBy(ctx context.Context, sample Sample) (bool, error)
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the raw value corresponding to the attribute
passed as parameter and whether the sample defines one at all.
*/
type Sample interface {
	ValueFor(context.Context, Attribute) (string, bool, error)
}

/*
DiscreteCriterion represents a constraint on a discrete attribute: the value
it must take.
*/
type DiscreteCriterion interface {
	Criterion
	Value() string
}

/*
ThresholdCriterion represents a constraint on a continuous attribute: its
value must be less than or equal to the threshold, or strictly greater than
it when Above returns true.
*/
type ThresholdCriterion interface {
	Criterion
	Threshold() string
	Above() bool
}

type discreteCriterion struct {
	attribute Attribute
	value     string
}

type thresholdCriterion struct {
	attribute Attribute
	raw       string
	threshold decimal.Decimal
	above     bool
}

/*
NewDiscreteCriterion takes a discrete attribute and a value and returns a
DiscreteCriterion satisfied by samples holding exactly that value.
*/
func NewDiscreteCriterion(a Attribute, value string) DiscreteCriterion {
	return &discreteCriterion{a, value}
}

/*
NewThresholdCriterion takes a continuous attribute, the textual threshold and
whether the criterion selects the values above it, and returns the
corresponding ThresholdCriterion. An error is returned if the threshold is
not a decimal number.
*/
func NewThresholdCriterion(a Attribute, threshold string, above bool) (ThresholdCriterion, error) {
	t, err := ParseDecimal(threshold)
	if err != nil {
		return nil, fmt.Errorf("threshold for %s: %v", a.Name(), err)
	}
	return &thresholdCriterion{a, threshold, t, above}, nil
}

/*
BelowOrEqual takes a decimal value and a decimal threshold and returns
whether the value belongs to the lower half of a split on the threshold.
Tree construction and classification both route values through it.
*/
func BelowOrEqual(value, threshold decimal.Decimal) bool {
	return value.Cmp(threshold) <= 0
}

func (dc *discreteCriterion) Attribute() Attribute {
	return dc.attribute
}

/*
SatisfiedBy returns false if the sample does not define a value for the
attribute, and whether the value equals the criterion's otherwise.
*/
func (dc *discreteCriterion) SatisfiedBy(ctx context.Context, sample Sample) (bool, error) {
	val, ok, err := sample.ValueFor(ctx, dc.attribute)
	if err != nil || !ok {
		return false, err
	}
	return val == dc.value, nil
}

func (dc *discreteCriterion) Value() string {
	return dc.value
}

func (dc *discreteCriterion) String() string {
	return fmt.Sprintf("%s is %s", dc.attribute.Name(), dc.value)
}

func (tc *thresholdCriterion) Attribute() Attribute {
	return tc.attribute
}

/*
SatisfiedBy returns false if the sample does not define a decimal value for
the attribute. Otherwise it compares the value exactly against the threshold.
*/
func (tc *thresholdCriterion) SatisfiedBy(ctx context.Context, sample Sample) (bool, error) {
	val, ok, err := sample.ValueFor(ctx, tc.attribute)
	if err != nil || !ok {
		return false, err
	}
	d, err := ParseDecimal(val)
	if err != nil {
		return false, nil
	}
	return BelowOrEqual(d, tc.threshold) != tc.above, nil
}

func (tc *thresholdCriterion) Threshold() string {
	return tc.raw
}

func (tc *thresholdCriterion) Above() bool {
	return tc.above
}

func (tc *thresholdCriterion) String() string {
	if tc.above {
		return fmt.Sprintf("%s > %s", tc.attribute.Name(), tc.raw)
	}
	return fmt.Sprintf("%s <= %s", tc.attribute.Name(), tc.raw)
}
