package tree

import (
	"context"
	"testing"

	"github.com/lordrook/J48/attribute"
)

type mapSample map[string]string

func (ms mapSample) ValueFor(_ context.Context, a attribute.Attribute) (string, bool, error) {
	v, ok := ms[a.Name()]
	return v, ok, nil
}

func weatherTree(t *testing.T) *Tree {
	weather := attribute.NewDiscreteAttribute("Weather")
	temperature := attribute.NewContinuousAttribute("Temperature")
	play := attribute.NewDiscreteAttribute("Play")
	play.MarkAsTarget()
	rain, err := NewContinuousNode(temperature, "65", NewLeaf("No"), NewLeaf("Yes"))
	if err != nil {
		t.Fatal(err)
	}
	root, err := NewDiscreteNode(weather,
		[]string{"Sunny", "Overcast", "Rain"},
		[]Node{NewLeaf("No"), NewLeaf("Yes"), rain})
	if err != nil {
		t.Fatal(err)
	}
	return New(root, play)
}

func TestClassify(t *testing.T) {
	tr := weatherTree(t)
	testCases := []struct {
		sample   mapSample
		expected string
	}{
		{mapSample{"Weather": "Sunny", "Temperature": "85"}, "No"},
		{mapSample{"Weather": "Overcast"}, "Yes"},
		{mapSample{"Weather": "Rain", "Temperature": "65"}, "No"},
		{mapSample{"Weather": "Rain", "Temperature": "65.0"}, "No"},
		{mapSample{"Weather": "Rain", "Temperature": "65.01"}, "Yes"},
		{mapSample{"Weather": "Rain", "Temperature": "9"}, "No"},
		{mapSample{"Weather": "Snow", "Temperature": "9"}, Unknown},
		{mapSample{"Temperature": "9"}, Unknown},
		{mapSample{"Weather": "Rain", "Temperature": "mild"}, Unknown},
		{mapSample{"Weather": "Rain"}, Unknown},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		got, err := tr.Classify(ctx, tc.sample)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.expected {
			t.Errorf("expected %v to be classified as %q, got %q", tc.sample, tc.expected, got)
		}
	}
}

func TestClassifyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := weatherTree(t).Classify(ctx, mapSample{"Weather": "Sunny"}); err == nil {
		t.Errorf("expected error for cancelled context")
	}
}

func TestNodeConstructors(t *testing.T) {
	weather := attribute.NewDiscreteAttribute("Weather")
	if _, err := NewDiscreteNode(weather, []string{"Sunny", "Sunny"}, []Node{NewLeaf("A"), NewLeaf("B")}); err == nil {
		t.Errorf("expected repeated value to be rejected")
	}
	if _, err := NewDiscreteNode(weather, []string{"Sunny"}, nil); err == nil {
		t.Errorf("expected misaligned children to be rejected")
	}
	temperature := attribute.NewContinuousAttribute("Temperature")
	if _, err := NewContinuousNode(temperature, "warm", NewLeaf("A"), NewLeaf("B")); err == nil {
		t.Errorf("expected non decimal threshold to be rejected")
	}
	if _, err := NewContinuousNode(temperature, "1", NewLeaf("A"), nil); err == nil {
		t.Errorf("expected missing child to be rejected")
	}
}

func TestTraverse(t *testing.T) {
	tr := weatherTree(t)
	var topdown, bottomup []string
	ctx := context.Background()
	tr.Traverse(ctx, false, func(_ context.Context, n Node) error {
		topdown = append(topdown, n.String())
		return nil
	})
	tr.Traverse(ctx, true, func(_ context.Context, n Node) error {
		bottomup = append(bottomup, n.String())
		return nil
	})
	if topdown[0] != "Weather" || bottomup[len(bottomup)-1] != "Weather" {
		t.Errorf("unexpected traversal orders %v and %v", topdown, bottomup)
	}
	if len(topdown) != 6 || len(bottomup) != 6 {
		t.Errorf("expected 6 nodes, got %d and %d", len(topdown), len(bottomup))
	}
	if tr.Depth() != 2 || tr.Leaves() != 4 {
		t.Errorf("expected depth 2 and 4 leaves, got %d and %d", tr.Depth(), tr.Leaves())
	}
	if names := tr.Attributes().Names(); len(names) != 3 || names[0] != "Weather" || names[2] != "Play" {
		t.Errorf("unexpected attributes %v", names)
	}
}

func TestString(t *testing.T) {
	expected := `[Weather]
|__Weather is Sunny: No
|__Weather is Overcast: Yes
|__Weather is Rain
   |__Temperature <= 65: No
   |__Temperature > 65: Yes
`
	if s := weatherTree(t).String(); s != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, s)
	}
	play := attribute.NewDiscreteAttribute("Play")
	if s := New(NewLeaf("Yes"), play).String(); s != "{ Yes }\n" {
		t.Errorf("unexpected leaf tree rendering %q", s)
	}
}
