package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// EventType is the kind of change a customer makes to the form.
type EventType uint8

const (
	EventSetSize EventType = iota
	EventClearSize
	EventCheckTopping
	EventUncheckTopping
	EventToggleTopping
	EventSetSodas
	EventClearSodas
)

// Event is a single change a customer makes to the form.
//
// The textual form of an event is one of:
//
//	size=<Small|Medium|Large>   select a size
//	size=                       clear the size
//	+<id>                       check a topping
//	-<id>                       uncheck a topping
//	~<id>                       toggle a topping
//	sodas=<n>                   select a number of sodas
//	sodas=                      clear the number of sodas
type Event struct {
	Type    EventType
	Size    Size
	Topping ToppingID
	Sodas   uint8
}

// ParseEvent parses the textual form of an Event.
func ParseEvent(event string) (Event, error) {
	event = strings.TrimSpace(event)
	if event == "" {
		return Event{}, ierrors.Wrap(ErrInvalidEvent, "empty event")
	}

	switch event[0] {
	case '+':
		return parseToppingEvent(EventCheckTopping, event)
	case '-':
		return parseToppingEvent(EventUncheckTopping, event)
	case '~':
		return parseToppingEvent(EventToggleTopping, event)
	}

	key, value, found := strings.Cut(event, "=")
	if !found {
		return Event{}, ierrors.Wrapf(ErrInvalidEvent, "'%s'", event)
	}

	switch FieldKey(strings.TrimSpace(key)) {
	case FieldSize:
		if value = strings.TrimSpace(value); value == "" {
			return Event{Type: EventClearSize}, nil
		}

		size, err := ParseSize(value)
		if err != nil {
			return Event{}, ierrors.Wrapf(ErrInvalidEvent, "'%s': %s", event, err.Error())
		}

		return Event{Type: EventSetSize, Size: size}, nil
	case "sodas", FieldNumSodas:
		if value = strings.TrimSpace(value); value == "" {
			return Event{Type: EventClearSodas}, nil
		}

		sodas, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return Event{}, ierrors.Wrapf(ErrInvalidEvent, "'%s': %s", event, err.Error())
		}

		return Event{Type: EventSetSodas, Sodas: uint8(sodas)}, nil
	default:
		return Event{}, ierrors.Wrapf(ErrInvalidEvent, "unknown field in '%s'", event)
	}
}

func parseToppingEvent(eventType EventType, event string) (Event, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(event[1:]), 10, 32)
	if err != nil {
		return Event{}, ierrors.Wrapf(ErrInvalidEvent, "'%s': %s", event, err.Error())
	}

	return Event{Type: eventType, Topping: ToppingID(id)}, nil
}

// Apply returns the Selection that results from applying the event to the given Selection.
func (e Event) Apply(selection Selection) (Selection, error) {
	switch e.Type {
	case EventSetSize:
		return selection.WithSize(e.Size), nil
	case EventClearSize:
		return selection.WithoutSize(), nil
	case EventCheckTopping:
		return selection.CheckTopping(e.Topping), nil
	case EventUncheckTopping:
		return selection.UncheckTopping(e.Topping)
	case EventToggleTopping:
		return selection.ToggleTopping(e.Topping), nil
	case EventSetSodas:
		return selection.WithSodas(e.Sodas), nil
	case EventClearSodas:
		return selection.WithoutSodas(), nil
	default:
		return selection, ierrors.Wrapf(ErrInvalidEvent, "unknown event type %d", e.Type)
	}
}

// String returns the textual form of the Event.
func (e Event) String() string {
	switch e.Type {
	case EventSetSize:
		return fmt.Sprintf("size=%s", e.Size)
	case EventClearSize:
		return "size="
	case EventCheckTopping:
		return fmt.Sprintf("+%d", e.Topping)
	case EventUncheckTopping:
		return fmt.Sprintf("-%d", e.Topping)
	case EventToggleTopping:
		return fmt.Sprintf("~%d", e.Topping)
	case EventSetSodas:
		return fmt.Sprintf("sodas=%d", e.Sodas)
	case EventClearSodas:
		return "sodas="
	default:
		return fmt.Sprintf("Event(%d)", e.Type)
	}
}
