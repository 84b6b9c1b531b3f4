package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

/*
Split takes a dataset, the fraction of its records to keep for training and
a source of randomness, and divides the dataset in two. The training set
gets ceil(n*trainFraction) records; the rest, picked uniformly at random,
make up the test set. Both keep the original order of their records.
*/
func Split(ds *Dataset, trainFraction float64, rnd *rand.Rand) (*Dataset, *Dataset, error) {
	if trainFraction <= 0 || trainFraction > 1 {
		return nil, nil, fmt.Errorf("training fraction must be in (0, 1], got %v", trainFraction)
	}
	n := ds.Len()
	testCount := n - int(math.Ceil(float64(n)*trainFraction-1e-9))
	inTest := make([]bool, n)
	for _, i := range rnd.Perm(n)[:testCount] {
		inTest[i] = true
	}
	var train, test []Record
	for i, r := range ds.records {
		if inTest[i] {
			test = append(test, r)
		} else {
			train = append(train, r)
		}
	}
	return ds.with(train), ds.with(test), nil
}
