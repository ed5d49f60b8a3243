package order

import (
	"github.com/iotaledger/hive.go/lo"

	"github.com/pizzatime/orderform/ds/orderedset"
)

// ToppingID identifies a topping.
type ToppingID uint32

// Topping is a topping that can be put on a pizza.
type Topping struct {
	ID    ToppingID `json:"id" koanf:"id"`
	Label string    `json:"label" koanf:"label"`
}

// Catalog contains all toppings that can be ordered.
type Catalog struct {
	ids    orderedset.OrderedSet[ToppingID]
	labels map[ToppingID]string
}

// NewCatalog creates a Catalog with the given toppings. If several toppings share an ID, the first one wins.
func NewCatalog(toppings ...Topping) *Catalog {
	c := &Catalog{
		ids:    orderedset.New[ToppingID](),
		labels: make(map[ToppingID]string, len(toppings)),
	}

	for _, topping := range toppings {
		if c.ids.Has(topping.ID) {
			continue
		}

		c.ids = c.ids.With(topping.ID)
		c.labels[topping.ID] = topping.Label
	}

	return c
}

// DefaultToppings returns the toppings that are offered if nothing else was configured.
func DefaultToppings() []Topping {
	return []Topping{
		{ID: 0, Label: "Pepperoni"},
		{ID: 1, Label: "Sausage"},
		{ID: 2, Label: "Mushroom"},
		{ID: 3, Label: "Bacon"},
		{ID: 4, Label: "Pineapple"},
	}
}

// DefaultCatalog returns a Catalog containing the DefaultToppings.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultToppings()...)
}

// Has returns true if the catalog contains a topping with the given ID.
func (c *Catalog) Has(id ToppingID) bool {
	return c.ids.Has(id)
}

// Label returns the label of the topping with the given ID.
func (c *Catalog) Label(id ToppingID) (label string, exists bool) {
	label, exists = c.labels[id]

	return label, exists
}

// Size returns the number of toppings in the catalog.
func (c *Catalog) Size() int {
	return c.ids.Size()
}

// All returns all toppings in catalog order.
func (c *Catalog) All() []Topping {
	return c.toppings(c.ids)
}

// Selected returns the toppings of the catalog that are selected, in the order they were checked.
func (c *Catalog) Selected(selection Selection) []Topping {
	toppings, set := selection.Toppings()
	if !set {
		return make([]Topping, 0)
	}

	return c.toppings(toppings.Intersect(c.ids))
}

// Unselected returns the toppings of the catalog that are not selected, in catalog order.
func (c *Catalog) Unselected(selection Selection) []Topping {
	return c.toppings(c.ids.Filter(func(id ToppingID) bool {
		return !selection.HasTopping(id)
	}))
}

func (c *Catalog) toppings(ids orderedset.ReadOnly[ToppingID]) []Topping {
	return lo.Map(ids.ToSlice(), func(id ToppingID) Topping {
		return Topping{ID: id, Label: c.labels[id]}
	})
}
