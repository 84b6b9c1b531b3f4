package j48

// BuildError represents a violation of the conditions a dataset must meet
// for a tree to be built from it.
type BuildError string

const (
	// ErrEmptyDataset is returned when building or measuring a dataset without records
	ErrEmptyDataset = BuildError("empty dataset")
	// ErrMissingTarget is returned when the dataset has no column for the target attribute
	ErrMissingTarget = BuildError("target attribute missing")
	// ErrBlankLabel is returned when a record has a blank target label
	ErrBlankLabel = BuildError("blank target label")
	// ErrInvalidContinuousValue is returned when a continuous value is not a decimal number
	ErrInvalidContinuousValue = BuildError("continuous value is not a decimal number")
)

func (be BuildError) Error() string {
	return string(be)
}
