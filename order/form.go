package order

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
)

// Form holds the current Selection of a single customer.
//
// Every change builds a new Selection which replaces the held one only if the change succeeded.
type Form struct {
	catalog   *Catalog
	selection Selection
	log       *zap.SugaredLogger
}

// NewForm creates a Form with an empty Selection.
func NewForm(catalog *Catalog, log *zap.SugaredLogger) *Form {
	return &Form{
		catalog:   catalog,
		selection: NewSelection(),
		log:       log.Named("Form"),
	}
}

// Selection returns the current Selection.
func (f *Form) Selection() Selection {
	return f.selection
}

// Catalog returns the toppings the form offers.
func (f *Form) Catalog() *Catalog {
	return f.catalog
}

// Apply applies the given event to the current Selection.
func (f *Form) Apply(event Event) error {
	switch event.Type {
	case EventCheckTopping, EventUncheckTopping, EventToggleTopping:
		if !f.catalog.Has(event.Topping) {
			f.log.Warnf("rejected event %s: unknown topping", event)

			return ierrors.Wrapf(ErrUnknownTopping, "topping %d", event.Topping)
		}
	}

	selection, err := event.Apply(f.selection)
	if err != nil {
		f.log.Warnf("rejected event %s: %s", event, err)

		return ierrors.Wrapf(err, "failed to apply event %s", event)
	}

	f.log.Debugw("applied event", "event", event.String(), "selection", selection.Fields())
	f.selection = selection

	return nil
}

// ApplyAll applies the given events in order and stops at the first error.
func (f *Form) ApplyAll(events ...Event) error {
	for _, event := range events {
		if err := f.Apply(event); err != nil {
			return err
		}
	}

	return nil
}

// Render writes the form to the given writer. Filled out fields are rendered first and marked with "*".
func (f *Form) Render(writer io.Writer) error {
	var builder strings.Builder

	builder.WriteString("Pizza Time!\n")
	for _, field := range f.selection.Fields() {
		marker := " "
		if field.Set {
			marker = "*"
		}

		fmt.Fprintf(&builder, "\n[%s] %s\n", marker, f.renderField(field.Key))
	}

	if _, err := io.WriteString(writer, builder.String()); err != nil {
		return ierrors.Wrap(err, "failed to render form")
	}

	return nil
}

func (f *Form) renderField(key FieldKey) string {
	switch key {
	case FieldSize:
		size, set := f.selection.Size()
		if !set {
			return "Size: -"
		}

		return "Size: " + size.String()
	case FieldToppings:
		var builder strings.Builder
		builder.WriteString("Toppings:")
		for _, topping := range f.catalog.Selected(f.selection) {
			fmt.Fprintf(&builder, "\n    [x] %d %s", topping.ID, topping.Label)
		}
		for _, topping := range f.catalog.Unselected(f.selection) {
			fmt.Fprintf(&builder, "\n    [ ] %d %s", topping.ID, topping.Label)
		}

		return builder.String()
	case FieldNumSodas:
		sodas, set := f.selection.Sodas()
		if !set {
			return "Sodas: -"
		}

		return fmt.Sprintf("Sodas: %d", sodas)
	default:
		return string(key)
	}
}
