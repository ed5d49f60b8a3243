package orderedset

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrEmpty is returned when an empty sequence is decoded into a NonEmpty set.
	ErrEmpty = ierrors.New("set must contain at least one element")

	// ErrDuplicateElement is returned when an encoded set contains the same element twice.
	ErrDuplicateElement = ierrors.New("duplicate element in encoded set")

	// ErrElementNotFound is used to abort iterations that look for a missing element.
	ErrElementNotFound = ierrors.New("element not found")
)
