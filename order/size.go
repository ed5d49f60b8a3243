package order

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// Size is the size of the pizza.
type Size uint8

const (
	Small Size = iota
	Medium
	Large
)

// AllSizes contains all sizes in the order they are offered.
var AllSizes = []Size{Small, Medium, Large}

// ParseSize returns the Size with the given (case-insensitive) name.
func ParseSize(name string) (Size, error) {
	for _, size := range AllSizes {
		if strings.EqualFold(size.String(), name) {
			return size, nil
		}
	}

	return 0, ierrors.Wrapf(ErrUnknownSize, "'%s'", name)
}

func (s Size) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
}
