package j48

import (
	"math"
)

/*
Pruner is an interface wrapping the Prune method, that can be used
to decide whether a continuous split is good enough to become part of a
tree or if the node must become a leaf instead.

The Prune method takes the GainResult of the split and returns a boolean:
true to indicate the split must be pruned, false to allow its adding to the
tree and further development.
*/
type Pruner interface {
	Prune(g *GainResult) bool
}

/*
PrunerFunc wraps a function with the Prune method signature to implement
the Pruner interface
*/
type PrunerFunc func(g *GainResult) bool

/*
Prune takes a GainResult and invokes the PrunerFunc with it to return its
boolean result.
*/
func (pf PrunerFunc) Prune(g *GainResult) bool {
	return pf(g)
}

/*
MDLPruner returns the default Pruner. It accepts a continuous split when its
gain is positive and at least
(1/N) x log2(N-1) + (1/N) x [ log2(3^k - 2) - k x Entropy(S) - A x Entropy(S1) - B x Entropy(S1) ]
with
 * N being the number of records in the dataset S
 * k being the number of different labels over both halves of the split
 * S1 being the records below or equal to the threshold, A their number
 * B being the number of records above the threshold
Splits of datasets with less than 2 records are always pruned.
*/
func MDLPruner() Pruner {
	return PrunerFunc(func(g *GainResult) bool {
		if g.N < 2 || len(g.Subsets) != 2 {
			return true
		}
		return !(g.Gain > 0 && g.Gain >= mdlBound(g))
	})
}

// mdlBound returns the minimum gain MDLPruner accepts for a continuous split
func mdlBound(g *GainResult) float64 {
	n := float64(g.N)
	k := float64(g.Counts[0].Merge(g.Counts[1]).Len())
	a := float64(g.Subsets[0].Len())
	b := float64(g.Subsets[1].Len())
	eBelow := g.Entropies[0]
	return math.Log2(n-1)/n +
		(math.Log2(math.Pow(3, k)-2)-k*g.ParentEntropy-a*eBelow-b*eBelow)/n
}

/*
FayyadIraniPruner returns a Pruner that accepts a continuous split when its
gain is positive and greater than
(1/N) x log2(N-1) + (1/N) x [ log2(3^k - 2) - (k x Entropy(S) - k1 x Entropy(S1) - k2 x Entropy(S2)) ]
with
 * N being the number of records in the dataset S
 * k being the number of different labels in S
 * S1 and S2 being the records below or equal and above the threshold
 * k1 and k2 being the number of different labels in S1 and S2
*/
func FayyadIraniPruner() Pruner {
	return PrunerFunc(func(g *GainResult) bool {
		if g.N < 2 || len(g.Subsets) != 2 {
			return true
		}
		n := float64(g.N)
		k := float64(g.Counts[0].Merge(g.Counts[1]).Len())
		delta := math.Log2(math.Pow(3, k)-2) - k*g.ParentEntropy
		for i, lc := range g.Counts {
			delta += float64(lc.Len()) * g.Entropies[i]
		}
		bound := (math.Log2(n-1) + delta) / n
		return !(g.Gain > 0 && g.Gain > bound)
	})
}

/*
FixedInformationGainPruner takes an informationGainThreshold float64 value
and returns a Pruner whose Prune method returns whether the informationGainThreshold
is greater or equal to the received split's information gain
*/
func FixedInformationGainPruner(informationGainThreshold float64) Pruner {
	return PrunerFunc(func(g *GainResult) bool {
		return informationGainThreshold >= g.Gain
	})
}

/*
NoPruner returns a Pruner whose Prune method always returns false, that is,
never prunes.
*/
func NoPruner() Pruner {
	return PrunerFunc(func(*GainResult) bool {
		return false
	})
}
