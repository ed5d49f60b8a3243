package orderedset

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/ds/walker"
	"github.com/iotaledger/hive.go/lo"
)

// ReadOnly bundles the read methods that are shared by OrderedSet and NonEmpty.
type ReadOnly[ElementType comparable] interface {
	// Has returns true if the set contains the given element.
	Has(element ElementType) bool

	// HasAll returns true if the set contains all elements of the given set.
	HasAll(other ReadOnly[ElementType]) bool

	// ForEach iterates through all elements in insertion order (returning an error will stop the iteration).
	ForEach(callback func(element ElementType) error) error

	// Range iterates through all elements in insertion order.
	Range(callback func(element ElementType))

	// Intersect returns the elements of the set that are also contained in the given set.
	Intersect(other ReadOnly[ElementType]) OrderedSet[ElementType]

	// Filter returns a new set with all elements that satisfy the given predicate.
	Filter(predicate func(element ElementType) bool) OrderedSet[ElementType]

	// Equals returns true if the set contains the same elements in the same order as the given set.
	Equals(other ReadOnly[ElementType]) bool

	// Is returns true if the given element is the only element in the set.
	Is(element ElementType) bool

	// Iterator returns an iterator that walks the elements in insertion order.
	Iterator() *walker.Walker[ElementType]

	// Size returns the number of elements in the set.
	Size() int

	// IsEmpty returns true if the set is empty.
	IsEmpty() bool

	// ToSlice returns a fresh copy of the elements in insertion order.
	ToSlice() []ElementType

	// Encode encodes the set into a byte slice.
	Encode() ([]byte, error)

	// String returns a string representation of the set.
	String() string
}

// readOnly is the representation shared by all set flavors.
//
// Every element of elements has an entry in index and vice versa, elements contains no duplicates and its order is
// the order in which the elements were first added. Once a readOnly was handed out it is never modified again.
type readOnly[T comparable] struct {
	elements []T
	index    map[T]types.Empty
}

// newReadOnly creates a readOnly that contains the given elements (later duplicates are dropped).
func newReadOnly[T comparable](elements ...T) *readOnly[T] {
	r := &readOnly[T]{
		elements: make([]T, 0, len(elements)),
		index:    make(map[T]types.Empty, len(elements)),
	}

	for _, element := range elements {
		r.add(element)
	}

	return r
}

// add appends the element if it is not present yet. It must only be used while the readOnly is being built.
func (r *readOnly[T]) add(element T) (added bool) {
	if _, exists := r.index[element]; exists {
		return false
	}

	r.index[element] = types.Void
	r.elements = append(r.elements, element)

	return true
}

// with returns a copy of the readOnly that additionally contains the given element.
func (r *readOnly[T]) with(element T) *readOnly[T] {
	if r.Has(element) {
		return r
	}

	return newReadOnly(append(lo.CopySlice(r.elements), element)...)
}

// without returns a copy of the readOnly that does not contain the given element.
func (r *readOnly[T]) without(element T) *readOnly[T] {
	if !r.Has(element) {
		return r
	}

	return r.filter(func(other T) bool {
		return other != element
	})
}

func (r *readOnly[T]) filter(predicate func(element T) bool) *readOnly[T] {
	return newReadOnly(lo.Filter(r.elements, predicate)...)
}

// Has returns true if the set contains the given element.
func (r *readOnly[T]) Has(element T) bool {
	if r == nil {
		return false
	}

	_, has := r.index[element]

	return has
}

// HasAll returns true if the set contains all elements of the given set.
func (r *readOnly[T]) HasAll(other ReadOnly[T]) bool {
	if r == nil {
		return other.IsEmpty()
	}

	return other.ForEach(func(element T) error {
		if !r.Has(element) {
			return ErrElementNotFound
		}

		return nil
	}) == nil
}

// ForEach iterates through all elements in insertion order (returning an error will stop the iteration).
func (r *readOnly[T]) ForEach(callback func(element T) error) error {
	if r == nil {
		return nil
	}

	for _, element := range r.elements {
		if err := callback(element); err != nil {
			return err
		}
	}

	return nil
}

// Range iterates through all elements in insertion order.
func (r *readOnly[T]) Range(callback func(element T)) {
	if r == nil {
		return
	}

	for _, element := range r.elements {
		callback(element)
	}
}

// Intersect returns the elements of the set that are also contained in the given set.
func (r *readOnly[T]) Intersect(other ReadOnly[T]) OrderedSet[T] {
	return r.Filter(other.Has)
}

// Filter returns a new set with all elements that satisfy the given predicate.
func (r *readOnly[T]) Filter(predicate func(element T) bool) OrderedSet[T] {
	if r == nil {
		return New[T]()
	}

	return &orderedSet[T]{readOnly: r.filter(predicate)}
}

// Equals returns true if the set contains the same elements in the same order as the given set.
func (r *readOnly[T]) Equals(other ReadOnly[T]) bool {
	if other == nil || r.Size() != other.Size() {
		return false
	}

	return lo.Equal(r.ToSlice(), other.ToSlice())
}

// Is returns true if the given element is the only element in the set.
func (r *readOnly[T]) Is(element T) bool {
	return r.Size() == 1 && r.Has(element)
}

// Iterator returns an iterator that walks the elements in insertion order.
func (r *readOnly[T]) Iterator() *walker.Walker[T] {
	return walker.New[T](false).PushAll(r.ToSlice()...)
}

// Size returns the number of elements in the set.
func (r *readOnly[T]) Size() int {
	if r == nil {
		return 0
	}

	return len(r.elements)
}

// IsEmpty returns true if the set is empty.
func (r *readOnly[T]) IsEmpty() bool {
	return r.Size() == 0
}

// ToSlice returns a fresh copy of the elements in insertion order.
func (r *readOnly[T]) ToSlice() []T {
	if r == nil {
		return make([]T, 0)
	}

	return lo.CopySlice(r.elements)
}

// String returns a string representation of the set.
func (r *readOnly[T]) String() string {
	var element T
	elementTypeName := reflect.TypeOf(element).Name()

	elementStrings := make([]string, 0, r.Size())
	r.Range(func(element T) {
		elementStrings = append(elementStrings, strings.TrimRight(strings.ReplaceAll(fmt.Sprintf("%+v", element), elementTypeName+"(", ""), ")"))
	})

	return fmt.Sprintf("%ss(%s)", elementTypeName, strings.Join(elementStrings, ", "))
}

// code contract (make sure the type implements all required methods).
var _ ReadOnly[int] = new(readOnly[int])
