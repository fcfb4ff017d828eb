package planner

// Source tells where the values of a Result came from.
type Source int

const (
	// SourceDefault marks illustrative placeholder values: no real figures were available.
	SourceDefault Source = iota
	SourceSummary
	SourceSaved
	SourceInput
)

func (s Source) String() string {
	switch s {
	case SourceSummary:
		return "summary"
	case SourceSaved:
		return "saved"
	case SourceInput:
		return "input"
	}
	return "default"
}

type Result[T any] struct {
	Value  T
	Source Source
}

// NoData wraps placeholder values so they cannot be mistaken for real figures.
func NoData[T any](placeholder T) Result[T] {
	return Result[T]{Value: placeholder, Source: SourceDefault}
}

func From[T any](value T, source Source) Result[T] {
	return Result[T]{Value: value, Source: source}
}

func (r Result[T]) HasData() bool {
	return r.Source != SourceDefault
}
