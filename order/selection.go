package order

import (
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/pizzatime/orderform/ds/orderedset"
)

// FieldKey identifies a field of the order form.
type FieldKey string

const (
	FieldSize     FieldKey = "size"
	FieldToppings FieldKey = "toppings"
	FieldNumSodas FieldKey = "numSodas"
)

// fieldKeys contains the field keys in declaration order.
var fieldKeys = []FieldKey{FieldSize, FieldToppings, FieldNumSodas}

// Field is a field of the order form together with the information whether the customer filled it out.
type Field struct {
	Key FieldKey
	Set bool
}

// Selection is the state of the order form.
//
// Every field is optional. If no topping is selected the toppings field is nil, never an empty set. Selection is a
// value: all methods that change a field return a new Selection and leave the receiver untouched.
type Selection struct {
	size     *Size
	toppings orderedset.NonEmpty[ToppingID]
	sodas    *uint8
}

// NewSelection returns a Selection with no field filled out.
func NewSelection() Selection {
	return Selection{}
}

// Size returns the selected size.
func (s Selection) Size() (size Size, set bool) {
	if s.size == nil {
		return 0, false
	}

	return *s.size, true
}

// Toppings returns the selected toppings in the order they were checked.
func (s Selection) Toppings() (toppings orderedset.NonEmpty[ToppingID], set bool) {
	return s.toppings, s.toppings != nil
}

// Sodas returns the selected number of sodas.
func (s Selection) Sodas() (sodas uint8, set bool) {
	if s.sodas == nil {
		return 0, false
	}

	return *s.sodas, true
}

// HasTopping returns true if the given topping is selected.
func (s Selection) HasTopping(id ToppingID) bool {
	return s.toppings != nil && s.toppings.Has(id)
}

// WithSize returns a copy of the Selection with the given size.
func (s Selection) WithSize(size Size) Selection {
	s.size = &size

	return s
}

// WithoutSize returns a copy of the Selection without a size.
func (s Selection) WithoutSize() Selection {
	s.size = nil

	return s
}

// WithSodas returns a copy of the Selection with the given number of sodas.
func (s Selection) WithSodas(sodas uint8) Selection {
	s.sodas = &sodas

	return s
}

// WithoutSodas returns a copy of the Selection without a number of sodas.
func (s Selection) WithoutSodas() Selection {
	s.sodas = nil

	return s
}

// CheckTopping returns a copy of the Selection where the given topping is selected. Newly selected toppings are
// appended to the end; checking a selected topping has no effect.
func (s Selection) CheckTopping(id ToppingID) Selection {
	if s.toppings == nil {
		s.toppings = orderedset.NewNonEmpty(id)
	} else {
		s.toppings = s.toppings.With(id)
	}

	return s
}

// UncheckTopping returns a copy of the Selection where the given topping is not selected. Removing the last selected
// topping clears the toppings field.
func (s Selection) UncheckTopping(id ToppingID) (Selection, error) {
	if s.toppings == nil {
		return s, ierrors.Wrapf(ErrNoToppingsSelected, "failed to uncheck topping %d", id)
	}

	s.toppings = lo.Return1(s.toppings.Without(id))

	return s, nil
}

// ToggleTopping checks the given topping if it is not selected and unchecks it otherwise.
func (s Selection) ToggleTopping(id ToppingID) Selection {
	if !s.HasTopping(id) {
		return s.CheckTopping(id)
	}

	return lo.PanicOnErr(s.UncheckTopping(id))
}

// IsSet returns true if the field with the given key is filled out.
func (s Selection) IsSet(key FieldKey) bool {
	switch key {
	case FieldSize:
		return s.size != nil
	case FieldToppings:
		return s.toppings != nil
	case FieldNumSodas:
		return s.sodas != nil
	default:
		return false
	}
}

// Fields returns the fields of the form. Filled out fields come first, the others last and each group keeps the
// declaration order.
func (s Selection) Fields() []Field {
	fields := lo.Map(fieldKeys, func(key FieldKey) Field {
		return Field{Key: key, Set: s.IsSet(key)}
	})

	return append(
		lo.Filter(fields, func(field Field) bool { return field.Set }),
		lo.Filter(fields, func(field Field) bool { return !field.Set })...,
	)
}

// String returns a human-readable version of the Selection.
func (s Selection) String() string {
	size, toppings, sodas := "<none>", "<none>", "<none>"
	if s.size != nil {
		size = s.size.String()
	}
	if s.toppings != nil {
		toppings = s.toppings.String()
	}
	if s.sodas != nil {
		sodas = strconv.Itoa(int(*s.sodas))
	}

	return stringify.Struct("Selection",
		stringify.NewStructField(string(FieldSize), size),
		stringify.NewStructField(string(FieldToppings), toppings),
		stringify.NewStructField(string(FieldNumSodas), sodas),
	)
}
