package vector

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Vector is a dynamic array. The zero value is an empty vector ready to use.
type Vector[T any] struct {
	data []T // len(data) is the size, cap(data) the capacity
}

// New creates a vector of n zero-valued elements.
func New[T any](n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	return &Vector[T]{data: make([]T, n)}
}

// NewFilled creates a vector of n copies of v.
func NewFilled[T any](n int, v T) *Vector[T] {
	vec := New[T](n)
	for i := range vec.data {
		vec.data[i] = v
	}
	return vec
}

// FromSlice creates a vector holding a copy of s.
func FromSlice[T any](s []T) *Vector[T] {
	vec := &Vector[T]{data: make([]T, len(s))}
	copy(vec.data, s)
	return vec
}

// Len returns the number of elements.
func (vec *Vector[T]) Len() int { return len(vec.data) }

// Cap returns the number of elements the vector can hold without reallocation.
func (vec *Vector[T]) Cap() int { return cap(vec.data) }

// IsEmpty reports whether the vector has no elements.
func (vec *Vector[T]) IsEmpty() bool { return len(vec.data) == 0 }

// MaxLen returns the theoretical upper bound of the number of elements.
func (vec *Vector[T]) MaxLen() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return math.MaxInt
	}
	return math.MaxInt / sz
}

// Reserve makes sure the vector can hold at least n elements without
// reallocation. If n exceeds the current capacity, the backing array is
// reallocated to a capacity of exactly n.
func (vec *Vector[T]) Reserve(n int) error {
	if n > vec.MaxLen() {
		return fmt.Errorf("%w: cannot reserve %d elements", ErrLength, n)
	}
	if n > cap(vec.data) {
		vec.realloc(n)
	}
	return nil
}

// Resize changes the number of elements to n. Surplus elements are dropped,
// missing elements are filled with copies of v.
func (vec *Vector[T]) Resize(n int, v T) error {
	if n < 0 || n > vec.MaxLen() {
		return fmt.Errorf("%w: cannot resize to %d elements", ErrLength, n)
	}
	l := len(vec.data)
	if n <= l {
		vec.truncate(n)
		return nil
	}
	vec.grow(n)
	vec.data = vec.data[:n]
	for i := l; i < n; i++ {
		vec.data[i] = v
	}
	return nil
}

// ShrinkToFit reduces the capacity to the number of elements.
func (vec *Vector[T]) ShrinkToFit() {
	if cap(vec.data) > len(vec.data) {
		vec.realloc(len(vec.data))
	}
}

// At returns the element at index i, or ErrOutOfRange.
func (vec *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(vec.data) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(vec.data))
	}
	return vec.data[i], nil
}

// Get returns the element at index i. i is not checked beyond Go's own bounds
// checks.
func (vec *Vector[T]) Get(i int) T { return vec.data[i] }

// Set replaces the element at index i.
func (vec *Vector[T]) Set(i int, v T) { vec.data[i] = v }

// Ref returns a pointer to the element at index i. The pointer is valid until
// the next reallocation.
func (vec *Vector[T]) Ref(i int) *T { return &vec.data[i] }

// Front returns the first element, or the zero value for an empty vector.
func (vec *Vector[T]) Front() T {
	if len(vec.data) == 0 {
		var zero T
		return zero
	}
	return vec.data[0]
}

// Back returns the last element, or the zero value for an empty vector.
func (vec *Vector[T]) Back() T {
	if len(vec.data) == 0 {
		var zero T
		return zero
	}
	return vec.data[len(vec.data)-1]
}

// PushBack appends v. If the capacity is exhausted, it is at least doubled.
func (vec *Vector[T]) PushBack(v T) {
	l := len(vec.data)
	vec.grow(l + 1)
	vec.data = vec.data[:l+1]
	vec.data[l] = v
}

// PopBack removes the last element. Popping from an empty vector does nothing.
func (vec *Vector[T]) PopBack() {
	if len(vec.data) == 0 {
		tracer().Debugf("vector: pop from empty vector")
		return
	}
	vec.truncate(len(vec.data) - 1)
}

// Insert inserts vs before index pos, which may be Len to append. vs may
// share storage with the vector.
func (vec *Vector[T]) Insert(pos int, vs ...T) error {
	if pos < 0 || pos > len(vec.data) {
		return fmt.Errorf("%w: insert position %d, length %d", ErrOutOfRange, pos, len(vec.data))
	}
	if len(vs) == 0 {
		return nil
	}
	if vec.aliases(vs) {
		vs = slices.Clone(vs)
	}
	l, n := len(vec.data), len(vs)
	vec.grow(l + n)
	vec.data = vec.data[:l+n]
	copy(vec.data[pos+n:], vec.data[pos:l])
	copy(vec.data[pos:], vs)
	return nil
}

// InsertN inserts n copies of v before index pos.
func (vec *Vector[T]) InsertN(pos, n int, v T) error {
	if n < 0 || n > vec.MaxLen()-len(vec.data) {
		return fmt.Errorf("%w: cannot insert %d elements", ErrLength, n)
	}
	if pos < 0 || pos > len(vec.data) {
		return fmt.Errorf("%w: insert position %d, length %d", ErrOutOfRange, pos, len(vec.data))
	}
	l := len(vec.data)
	vec.grow(l + n)
	vec.data = vec.data[:l+n]
	copy(vec.data[pos+n:], vec.data[pos:l])
	for i := pos; i < pos+n; i++ {
		vec.data[i] = v
	}
	return nil
}

// Erase removes the element at index pos.
func (vec *Vector[T]) Erase(pos int) error {
	return vec.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last).
func (vec *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || last > len(vec.data) || first > last {
		return fmt.Errorf("%w: erase range [%d,%d), length %d", ErrOutOfRange,
			first, last, len(vec.data))
	}
	l := len(vec.data)
	copy(vec.data[first:], vec.data[last:])
	vec.truncate(l - (last - first))
	return nil
}

// Assign replaces the contents with a copy of vs. The capacity is reused if
// it suffices. vs may share storage with the vector.
func (vec *Vector[T]) Assign(vs ...T) {
	if vec.aliases(vs) {
		vs = slices.Clone(vs)
	}
	vec.Clear()
	vec.grow(len(vs))
	vec.data = append(vec.data, vs...)
}

// AssignN replaces the contents with n copies of v.
func (vec *Vector[T]) AssignN(n int, v T) error {
	if n < 0 || n > vec.MaxLen() {
		return fmt.Errorf("%w: cannot assign %d elements", ErrLength, n)
	}
	vec.Clear()
	return vec.Resize(n, v)
}

// Clear removes all elements, keeping the capacity.
func (vec *Vector[T]) Clear() {
	vec.truncate(0)
}

// Swap exchanges the contents of two vectors in constant time.
func (vec *Vector[T]) Swap(other *Vector[T]) {
	vec.data, other.data = other.data, vec.data
}

// Slice returns the elements as a slice sharing the vector's storage.
func (vec *Vector[T]) Slice() []T {
	return vec.data
}

// All returns an iterator over index/element pairs, front to back.
func (vec *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(vec.data)
}

// Backward returns an iterator over index/element pairs, back to front.
func (vec *Vector[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(vec.data)
}

// grow makes room for n elements, at least doubling the capacity.
func (vec *Vector[T]) grow(n int) {
	if n <= cap(vec.data) {
		return
	}
	limit := vec.MaxLen()
	if n > limit {
		panic(fmt.Sprintf("vector: cannot grow beyond %d elements", limit))
	}
	c := cap(vec.data)
	switch {
	case c >= limit/2:
		c = limit
	case 2*c > n:
		c = 2 * c
	default:
		c = n
	}
	vec.realloc(c)
}

func (vec *Vector[T]) realloc(c int) {
	tracer().Debugf("vector: reallocating from capacity %d to %d", cap(vec.data), c)
	data := make([]T, len(vec.data), c)
	copy(data, vec.data)
	vec.data = data
}

// aliases reports whether vs lies within the vector's backing array.
func (vec *Vector[T]) aliases(vs []T) bool {
	if len(vs) == 0 || cap(vec.data) == 0 {
		return false
	}
	var zero T
	sz := unsafe.Sizeof(zero)
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(vec.data)))
	hi := lo + uintptr(cap(vec.data))*sz
	p := uintptr(unsafe.Pointer(unsafe.SliceData(vs)))
	return p >= lo && p < hi
}

// truncate shortens to n elements, clearing the dropped ones.
func (vec *Vector[T]) truncate(n int) {
	clear(vec.data[n:])
	vec.data = vec.data[:n]
}

// Equal reports whether two vectors hold the same elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.data, b.data)
}

// EqualFunc reports whether two vectors hold elements equal according to eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.data, b.data, eq)
}

// Less reports whether a is lexicographically less than b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessFunc reports whether a is lexicographically less than b, comparing
// elements with less.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	n := min(len(a.data), len(b.data))
	for i := 0; i < n; i++ {
		if less(a.data[i], b.data[i]) {
			return true
		}
		if less(b.data[i], a.data[i]) {
			return false
		}
	}
	return len(a.data) < len(b.data)
}
