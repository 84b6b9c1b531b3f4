package evaluation

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/dataset"
	"github.com/lordrook/J48/tree"
)

func weatherTree(t *testing.T) *tree.Tree {
	weather := attribute.NewDiscreteAttribute("Weather")
	play := attribute.NewDiscreteAttribute("Play")
	play.MarkAsTarget()
	root, err := tree.NewDiscreteNode(weather,
		[]string{"Sunny", "Overcast", "Rain"},
		[]tree.Node{tree.NewLeaf("No"), tree.NewLeaf("Yes"), tree.NewLeaf("Yes")})
	if err != nil {
		t.Fatal(err)
	}
	return tree.New(root, play)
}

func TestEvaluate(t *testing.T) {
	ds, err := dataset.Load([]string{"Weather", "Play"}, [][]string{
		{"Sunny", "No"},
		{"Overcast", "Yes"},
		{"Rain", "Yes"},
		{"Rain", "No"},
		{"Snow", "No"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, parallelism := range []int{0, 1, 3} {
		r, err := Evaluate(context.Background(), weatherTree(t), ds, parallelism)
		if err != nil {
			t.Fatal(err)
		}
		if r.Total != 5 || r.Correct != 3 || r.Unknown != 1 {
			t.Errorf("unexpected results %v", r)
		}
		if math.Abs(r.Accuracy()-0.6) > 1e-9 {
			t.Errorf("expected accuracy 0.6, got %f", r.Accuracy())
		}
		if r.Confusion("No", "Yes") != 1 || r.Confusion("No", tree.Unknown) != 1 || r.Confusion("Yes", "Yes") != 2 {
			t.Errorf("unexpected confusion matrix\n%s", r.ConfusionMatrix())
		}
		if r.Outcomes[4].Predicted != tree.Unknown {
			t.Errorf("expected outcomes in record order")
		}
	}
}

func TestConfusionMatrixAndCSV(t *testing.T) {
	r := newResults([]Outcome{
		{"No", "No"},
		{"Yes", "No"},
		{"Yes", tree.Unknown},
	})
	expected := "actual\\predicted\tNo\tYes\t?\nNo\t1\t0\t0\nYes\t1\t0\t1\n"
	if m := r.ConfusionMatrix(); m != expected {
		t.Errorf("expected matrix\n%q\ngot\n%q", expected, m)
	}
	var b bytes.Buffer
	if err := r.WriteCSV(&b); err != nil {
		t.Fatal(err)
	}
	expected = "actual,predicted,error\nNo,No,\nYes,No,+\nYes,?,+\n"
	if b.String() != expected {
		t.Errorf("expected CSV\n%s\ngot\n%s", expected, b.String())
	}
}

func TestEvaluateWithoutTargetColumn(t *testing.T) {
	ds, err := dataset.Load([]string{"Weather", "Label"}, [][]string{{"Sunny", "No"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Evaluate(context.Background(), weatherTree(t), ds, 1); err == nil {
		t.Errorf("expected error for dataset without Play column")
	}
}
