package orderedset

import (
	"github.com/iotaledger/hive.go/lo"
)

// HeadTail is the decomposition of a non-empty sequence into its first element and the remaining elements.
type HeadTail[T comparable] struct {
	// Head is the first element.
	Head T

	// Tail contains the elements after the head in order.
	Tail []T
}

// NonEmpty is an immutable OrderedSet that contains at least one element.
//
// There is no way to construct an empty NonEmpty: the constructors structurally require a head element. Callers
// represent "no elements" by the absence of a NonEmpty (a nil interface value).
type NonEmpty[ElementType comparable] interface {
	// Head returns the first element.
	Head() ElementType

	// Tail returns a fresh copy of the elements after the head.
	Tail() []ElementType

	// HeadTail decomposes the set into its first element and the remaining elements.
	HeadTail() HeadTail[ElementType]

	// With returns a set that additionally contains the given element (appended at the end if it was not present).
	With(element ElementType) NonEmpty[ElementType]

	// Without returns a set that does not contain the given element. It returns false if the given element was the
	// last element of the set.
	Without(element ElementType) (NonEmpty[ElementType], bool)

	// ToOrderedSet returns the set as a (possibly empty) OrderedSet.
	ToOrderedSet() OrderedSet[ElementType]

	// ReadOnly imports the read methods from ReadOnly.
	ReadOnly[ElementType]
}

// NewNonEmpty creates a NonEmpty that starts with head and continues with the elements of tail that are not present
// yet.
func NewNonEmpty[T comparable](head T, tail ...T) NonEmpty[T] {
	r := newReadOnly[T](head)
	for _, element := range tail {
		r.add(element)
	}

	return &nonEmpty[T]{readOnly: r}
}

// FromHeadTail creates a NonEmpty from its HeadTail decomposition.
func FromHeadTail[T comparable](headTail HeadTail[T]) NonEmpty[T] {
	return NewNonEmpty(headTail.Head, headTail.Tail...)
}

// FromSlice creates a NonEmpty from the given elements. It returns false if elements is empty.
func FromSlice[T comparable](elements []T) (NonEmpty[T], bool) {
	if len(elements) == 0 {
		return nil, false
	}

	return NewNonEmpty(elements[0], elements[1:]...), true
}

// nonEmpty implements the NonEmpty interface.
type nonEmpty[ElementType comparable] struct {
	*readOnly[ElementType]
}

// Head returns the first element.
func (n *nonEmpty[ElementType]) Head() ElementType {
	return n.elements[0]
}

// Tail returns a fresh copy of the elements after the head.
func (n *nonEmpty[ElementType]) Tail() []ElementType {
	return lo.CopySlice(n.elements[1:])
}

// HeadTail decomposes the set into its first element and the remaining elements.
func (n *nonEmpty[ElementType]) HeadTail() HeadTail[ElementType] {
	return HeadTail[ElementType]{
		Head: n.Head(),
		Tail: n.Tail(),
	}
}

// With returns a set that additionally contains the given element (appended at the end if it was not present).
func (n *nonEmpty[ElementType]) With(element ElementType) NonEmpty[ElementType] {
	if n.Has(element) {
		return n
	}

	return &nonEmpty[ElementType]{readOnly: n.with(element)}
}

// Without returns a set that does not contain the given element. The first remaining element becomes the new head.
// It returns false if the given element was the last element of the set.
func (n *nonEmpty[ElementType]) Without(element ElementType) (NonEmpty[ElementType], bool) {
	if !n.Has(element) {
		return n, true
	}

	if n.Is(element) {
		return nil, false
	}

	return &nonEmpty[ElementType]{readOnly: n.without(element)}, true
}

// ToOrderedSet returns the set as a (possibly empty) OrderedSet.
func (n *nonEmpty[ElementType]) ToOrderedSet() OrderedSet[ElementType] {
	return &orderedSet[ElementType]{readOnly: n.readOnly}
}

// code contract (make sure the type implements all required methods).
var _ NonEmpty[int] = new(nonEmpty[int])
