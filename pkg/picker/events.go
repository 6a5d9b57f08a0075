package picker

import (
	"fmt"

	"tableflip.dev/datepicker/pkg/date"
)

// EventType names a picker notification.
type EventType string

const (
	// EventShow fires when the popup opens.
	EventShow EventType = "show"
	// EventHide fires when the popup closes.
	EventHide EventType = "hide"
	// EventChange fires when the value changes, including when it is cleared.
	EventChange EventType = "change"
)

// Event is delivered to listeners.
type Event struct {
	Type EventType
	Date date.Value
	Text string
}

// Describe renders the event for logs.
func (e Event) Describe() string {
	return fmt.Sprintf(`type:%q date:%q text:%q`, e.Type, e.Date.String(), e.Text)
}

// Listener receives picker events synchronously.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (p *Picker) Subscribe(l Listener) func() {
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, subscription{id: id, fn: l})
	return func() {
		for i, s := range p.listeners {
			if s.id == id {
				p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

func (p *Picker) emit(t EventType) {
	e := Event{Type: t, Date: p.value, Text: p.Text()}
	for _, s := range p.listeners {
		s.fn(e)
	}
}
