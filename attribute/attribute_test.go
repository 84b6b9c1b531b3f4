package attribute

import (
	"context"
	"reflect"
	"testing"
)

type mapSample map[string]string

func (ms mapSample) ValueFor(_ context.Context, a Attribute) (string, bool, error) {
	v, ok := ms[a.Name()]
	return v, ok, nil
}

func TestInfer(t *testing.T) {
	testCases := []struct {
		values     []string
		continuous bool
	}{
		{[]string{"85", "80", "83.5", "-1e2"}, true},
		{[]string{"85", "", "70"}, true},
		{[]string{"85", "hot", "70"}, false},
		{[]string{"Sunny", "Rain"}, false},
		{[]string{"", " "}, false},
		{nil, false},
	}
	for i, tc := range testCases {
		a := Infer("col", tc.values)
		if a.Continuous() != tc.continuous {
			t.Errorf("case %d: expected continuous %v for %v, got %v", i, tc.continuous, tc.values, a.Continuous())
		}
		if a.Name() != "col" {
			t.Errorf("case %d: expected name col, got %s", i, a.Name())
		}
	}
}

func TestDiscreteAttributeValid(t *testing.T) {
	a := NewDiscreteAttribute("Weather", "Sunny", "Rain")
	if err := a.Valid("Sunny"); err != nil {
		t.Errorf("expected Sunny to be valid, got %v", err)
	}
	if err := a.Valid("Snow"); err == nil {
		t.Errorf("expected Snow to be rejected")
	}
	if err := a.Valid(""); err == nil {
		t.Errorf("expected blank value to be rejected")
	}
	if err := NewDiscreteAttribute("Weather").Valid("Snow"); err != nil {
		t.Errorf("expected any value to be valid without declared values, got %v", err)
	}
}

func TestContinuousAttributeValid(t *testing.T) {
	a := NewContinuousAttribute("Temperature")
	for _, v := range []string{"85", "-3.25", " 7 "} {
		if err := a.Valid(v); err != nil {
			t.Errorf("expected %q to be valid, got %v", v, err)
		}
	}
	for _, v := range []string{"", "hot", "1,5"} {
		if err := a.Valid(v); err == nil {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}

func TestMarkAsTarget(t *testing.T) {
	a := NewDiscreteAttribute("Play")
	if a.Target() {
		t.Fatalf("expected new attribute not to be the target")
	}
	a.MarkAsTarget()
	a.MarkAsTarget()
	if !a.Target() {
		t.Errorf("expected attribute to be the target")
	}
	s := NewSet(NewContinuousAttribute("Temperature"), a)
	target, ok := s.Target()
	if !ok || target.Name() != "Play" {
		t.Errorf("expected Play as target of set, got %v", target)
	}
}

func TestSetWithout(t *testing.T) {
	weather := NewDiscreteAttribute("Weather")
	temperature := NewContinuousAttribute("Temperature")
	wind := NewDiscreteAttribute("Wind")
	s := NewSet(weather, temperature, wind, NewDiscreteAttribute("Wind"))
	if s.Len() != 3 {
		t.Fatalf("expected duplicated name to be ignored, got %d attributes", s.Len())
	}
	reduced := s.Without("Temperature")
	if expected := []string{"Weather", "Wind"}; !reflect.DeepEqual(reduced.Names(), expected) {
		t.Errorf("expected %v, got %v", expected, reduced.Names())
	}
	if expected := []string{"Weather", "Temperature", "Wind"}; !reflect.DeepEqual(s.Names(), expected) {
		t.Errorf("expected original set to remain %v, got %v", expected, s.Names())
	}
	if _, ok := reduced.Get("Temperature"); ok {
		t.Errorf("expected Temperature not to be in reduced set")
	}
}

func TestThresholdCriterion(t *testing.T) {
	temperature := NewContinuousAttribute("Temperature")
	below, err := NewThresholdCriterion(temperature, "80", false)
	if err != nil {
		t.Fatal(err)
	}
	above, err := NewThresholdCriterion(temperature, "80", true)
	if err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		value string
		below bool
	}{
		{"80", true},
		{"80.0", true},
		{"80.000000000000001", false},
		{"79.99", true},
		{"100", false},
		{"9", true},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		s := mapSample{"Temperature": tc.value}
		ok, err := below.SatisfiedBy(ctx, s)
		if err != nil {
			t.Fatal(err)
		}
		if ok != tc.below {
			t.Errorf("expected %s <= 80 to be %v, got %v", tc.value, tc.below, ok)
		}
		ok, err = above.SatisfiedBy(ctx, s)
		if err != nil {
			t.Fatal(err)
		}
		if ok == tc.below {
			t.Errorf("expected %s > 80 to be %v, got %v", tc.value, !tc.below, ok)
		}
	}
	if ok, _ := below.SatisfiedBy(ctx, mapSample{}); ok {
		t.Errorf("expected sample without value not to satisfy criterion")
	}
	if _, err := NewThresholdCriterion(temperature, "warm", false); err == nil {
		t.Errorf("expected non decimal threshold to be rejected")
	}
}

func TestDiscreteCriterion(t *testing.T) {
	c := NewDiscreteCriterion(NewDiscreteAttribute("Weather"), "Rain")
	ctx := context.Background()
	if ok, _ := c.SatisfiedBy(ctx, mapSample{"Weather": "Rain"}); !ok {
		t.Errorf("expected Rain to satisfy criterion")
	}
	if ok, _ := c.SatisfiedBy(ctx, mapSample{"Weather": "Sunny"}); ok {
		t.Errorf("expected Sunny not to satisfy criterion")
	}
	if s := c.(interface{ String() string }).String(); s != "Weather is Rain" {
		t.Errorf("unexpected string %q", s)
	}
}
