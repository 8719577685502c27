package auth

import "testing"

func TestNotifier(t *testing.T) {
	t.Run("subscribers receive events", func(t *testing.T) {
		n := NewNotifier()
		var got []Event
		n.Subscribe(func(evt Event) { got = append(got, evt) })

		n.notify(Event{Type: EventSignedIn, UserID: "u1"})
		n.notify(Event{Type: EventSignedOut, UserID: "u1"})

		if len(got) != 2 {
			t.Fatalf("expected 2 events, got %d", len(got))
		}
		if got[0].Type != EventSignedIn || got[1].Type != EventSignedOut {
			t.Errorf("unexpected events: %+v", got)
		}
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		n := NewNotifier()
		var count int
		unsubscribe := n.Subscribe(func(Event) { count++ })

		n.notify(Event{Type: EventSignedIn, UserID: "u1"})
		unsubscribe()
		n.notify(Event{Type: EventSignedOut, UserID: "u1"})

		if count != 1 {
			t.Errorf("expected 1 event after unsubscribe, got %d", count)
		}
	})

	t.Run("unsubscribe affects only its own subscription", func(t *testing.T) {
		n := NewNotifier()
		var first, second int
		unsubFirst := n.Subscribe(func(Event) { first++ })
		n.Subscribe(func(Event) { second++ })

		unsubFirst()
		n.notify(Event{Type: EventSignedIn, UserID: "u1"})

		if first != 0 || second != 1 {
			t.Errorf("expected only second subscriber to fire, got first=%d second=%d", first, second)
		}
	})
}
