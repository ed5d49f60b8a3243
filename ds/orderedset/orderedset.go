// Package orderedset provides immutable, insertion-ordered sets including a variant that can never be empty.
package orderedset

// OrderedSet is an immutable collection of unique elements that remembers the order in which its elements were first
// added.
type OrderedSet[ElementType comparable] interface {
	// With returns a set that additionally contains the given element (appended at the end if it was not present).
	With(element ElementType) OrderedSet[ElementType]

	// Without returns a set that does not contain the given element.
	Without(element ElementType) OrderedSet[ElementType]

	// ToNonEmpty returns the NonEmpty version of the set or false if the set is empty.
	ToNonEmpty() (NonEmpty[ElementType], bool)

	// ReadOnly imports the read methods from ReadOnly.
	ReadOnly[ElementType]
}

// New creates a new OrderedSet with the given elements. Duplicates are dropped and the first occurrence of an element
// determines its position.
func New[T comparable](elements ...T) OrderedSet[T] {
	return &orderedSet[T]{
		readOnly: newReadOnly(elements...),
	}
}

// orderedSet implements the OrderedSet interface.
type orderedSet[ElementType comparable] struct {
	*readOnly[ElementType]
}

// With returns a set that additionally contains the given element (appended at the end if it was not present).
func (o *orderedSet[ElementType]) With(element ElementType) OrderedSet[ElementType] {
	if o.Has(element) {
		return o
	}

	return &orderedSet[ElementType]{readOnly: o.with(element)}
}

// Without returns a set that does not contain the given element.
func (o *orderedSet[ElementType]) Without(element ElementType) OrderedSet[ElementType] {
	if !o.Has(element) {
		return o
	}

	return &orderedSet[ElementType]{readOnly: o.without(element)}
}

// ToNonEmpty returns the NonEmpty version of the set or false if the set is empty.
func (o *orderedSet[ElementType]) ToNonEmpty() (NonEmpty[ElementType], bool) {
	if o.IsEmpty() {
		return nil, false
	}

	return &nonEmpty[ElementType]{readOnly: o.readOnly}, true
}

// code contract (make sure the type implements all required methods).
var _ OrderedSet[int] = new(orderedSet[int])
