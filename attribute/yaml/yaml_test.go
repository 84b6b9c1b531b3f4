package yaml

import (
	"reflect"
	"testing"

	"github.com/lordrook/J48/attribute"
)

func TestReadAttributes(t *testing.T) {
	md := []byte(`
attributes:
  Weather: [Sunny, Overcast, Rain]
  Temperature: continuous
  Humidity: continuous
  Wind: discrete
  Play: discrete
`)
	attrs, err := ReadAttributes(md)
	if err != nil {
		t.Fatal(err)
	}
	if expected := []string{"Weather", "Temperature", "Humidity", "Wind", "Play"}; !reflect.DeepEqual(attrs.Names(), expected) {
		t.Errorf("expected attributes %v in order, got %v", expected, attrs.Names())
	}
	target, ok := attrs.Target()
	if !ok || target.Name() != "Play" {
		t.Fatalf("expected Play to be the target, got %v", target)
	}
	weather, _ := attrs.Get("Weather")
	if expected := []string{"Sunny", "Overcast", "Rain"}; !reflect.DeepEqual(weather.(*attribute.DiscreteAttribute).AvailableValues(), expected) {
		t.Errorf("expected Weather values %v", expected)
	}
	temperature, _ := attrs.Get("Temperature")
	if !temperature.Continuous() {
		t.Errorf("expected Temperature to be continuous")
	}
}

func TestReadAttributesExplicitTarget(t *testing.T) {
	md := []byte(`
target: Play
attributes:
  Play: discrete
  Temperature: continuous
`)
	attrs, err := ReadAttributes(md)
	if err != nil {
		t.Fatal(err)
	}
	if target, ok := attrs.Target(); !ok || target.Name() != "Play" {
		t.Errorf("expected Play to be the target, got %v", target)
	}
}

func TestReadAttributesErrors(t *testing.T) {
	testCases := []string{
		`attributes: {}`,
		`attributes: {Play: sometimes}`,
		`attributes: {Weather: discrete, Temperature: continuous}`,
		"target: Wind\nattributes: {Weather: discrete}",
		`attributes: [`,
	}
	for _, tc := range testCases {
		if _, err := ReadAttributes([]byte(tc)); err == nil {
			t.Errorf("expected error for %q", tc)
		}
	}
}
