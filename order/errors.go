package order

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrNoToppingsSelected is returned when a topping is unchecked while no topping is selected.
	ErrNoToppingsSelected = ierrors.New("no toppings selected")

	// ErrUnknownTopping is returned when an event references a topping that is not part of the catalog.
	ErrUnknownTopping = ierrors.New("unknown topping")

	// ErrUnknownSize is returned when a size name can not be parsed.
	ErrUnknownSize = ierrors.New("unknown size")

	// ErrInvalidEvent is returned when an event string does not follow the event grammar.
	ErrInvalidEvent = ierrors.New("invalid event")
)
