package j48

import (
	"context"
	"math"
	"strconv"
	"testing"
)

func rainGain(t *testing.T) *GainResult {
	ds := load(t, []string{"Temperature", "Play"}, [][]string{
		{"70", "Yes"},
		{"68", "Yes"},
		{"65", "No"},
	})
	e, _ := Entropy(ds)
	g, err := Gain(context.Background(), ds, get(t, ds, "Temperature"), e)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestMDLPrunerAcceptsInformativeSplit(t *testing.T) {
	g := rainGain(t)
	if g.Threshold != "65" || math.Abs(g.Gain-0.9183) > 1e-3 {
		t.Fatalf("unexpected split on %s with gain %f", g.Threshold, g.Gain)
	}
	if MDLPruner().Prune(g) {
		t.Errorf("expected MDL to accept a split with gain %f", g.Gain)
	}
	if FayyadIraniPruner().Prune(g) {
		t.Errorf("expected Fayyad-Irani MDL to accept a split with gain %f", g.Gain)
	}
}

func TestMDLPrunerBound(t *testing.T) {
	testCases := []struct {
		labels    string
		threshold string
		gain      float64
		eBelow    float64
		eAbove    float64
		bound     float64
		prune     bool
	}{
		// (log2 5 + log2 7 - 2) / 6
		{"AABABB", "2", 0.459148, 0, 0.811278, 0.521547, true},
		// (log2 5 + log2 7 - 8 x 0.918296) / 6
		{"ABABBB", "3", 0.459148, 0.918296, 0, -0.369514, false},
	}
	for _, tc := range testCases {
		rows := make([][]string, len(tc.labels))
		for i, l := range tc.labels {
			rows[i] = []string{strconv.Itoa(i + 1), string(l)}
		}
		ds := load(t, []string{"x", "label"}, rows)
		e, _ := Entropy(ds)
		g, err := Gain(context.Background(), ds, get(t, ds, "x"), e)
		if err != nil {
			t.Fatal(err)
		}
		if g.Threshold != tc.threshold {
			t.Fatalf("%s: expected threshold %s, got %s", tc.labels, tc.threshold, g.Threshold)
		}
		if math.Abs(g.Gain-tc.gain) > 1e-5 {
			t.Errorf("%s: expected gain %f, got %f", tc.labels, tc.gain, g.Gain)
		}
		if math.Abs(g.Entropies[0]-tc.eBelow) > 1e-5 || math.Abs(g.Entropies[1]-tc.eAbove) > 1e-5 {
			t.Errorf("%s: expected entropies %f and %f, got %v", tc.labels, tc.eBelow, tc.eAbove, g.Entropies)
		}
		if bound := mdlBound(g); math.Abs(bound-tc.bound) > 1e-5 {
			t.Errorf("%s: expected MDL bound %f, got %f", tc.labels, tc.bound, bound)
		}
		if got := MDLPruner().Prune(g); got != tc.prune {
			t.Errorf("%s: expected Prune to be %v, got %v", tc.labels, tc.prune, got)
		}
	}
}

func TestMDLPrunerRejectsUselessSplits(t *testing.T) {
	g := rainGain(t)
	zero := *g
	zero.Gain = 0
	if !MDLPruner().Prune(&zero) {
		t.Errorf("expected MDL to reject a split without gain")
	}
	if !FayyadIraniPruner().Prune(&zero) {
		t.Errorf("expected Fayyad-Irani MDL to reject a split without gain")
	}
	tiny := *g
	tiny.N = 1
	if !MDLPruner().Prune(&tiny) {
		t.Errorf("expected MDL to reject splits of less than 2 records")
	}
}

func TestFixedInformationGainPruner(t *testing.T) {
	g := rainGain(t)
	if FixedInformationGainPruner(0.5).Prune(g) {
		t.Errorf("expected gain %f over 0.5 to be kept", g.Gain)
	}
	if !FixedInformationGainPruner(0.95).Prune(g) {
		t.Errorf("expected gain %f under 0.95 to be pruned", g.Gain)
	}
}

func TestNoPruner(t *testing.T) {
	g := rainGain(t)
	g.Gain = 0
	if NoPruner().Prune(g) {
		t.Errorf("expected NoPruner never to prune")
	}
}
