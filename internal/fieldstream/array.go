package fieldstream

// Element is the set of value types B2.5 fields decode to: 64-bit signed
// integers and 64-bit IEEE floats, matching the precision the simulation
// writes with.
type Element interface {
	int64 | float64
}

// Array is a decoded field payload: a shape and its elements in row-major
// order. len(Data) always equals the product of Shape.
type Array[T Element] struct {
	Shape []int
	Data  []T
}

// Len reports the number of elements.
func (a Array[T]) Len() int { return len(a.Data) }

// Rank reports the number of dimensions.
func (a Array[T]) Rank() int { return len(a.Shape) }

// At returns the element at the given row-major index. It panics when the
// number of indices does not match the rank or an index is out of range,
// the same contract as indexing a Go slice.
func (a Array[T]) At(idx ...int) T {
	if len(idx) != len(a.Shape) {
		panic("fieldstream: index rank does not match array rank")
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.Shape[d] {
			panic("fieldstream: index out of range")
		}
		off = off*a.Shape[d] + i
	}
	return a.Data[off]
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}
