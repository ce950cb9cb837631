package watch

import (
	"context"
	"time"
)

// Event represents a change of a watched document
type Event struct {
	Name string // path of the document inside the watched fs
	Op   Op
}

// Op describes a type of event
type Op uint32

// Operations
const (
	Create Op = 1 << iota
	Write
	Remove
)

func (op Op) String() string {
	switch op {
	case Create:
		return "CREATE"
	case Write:
		return "WRITE"
	case Remove:
		return "REMOVE"
	}
	return "?"
}

// Debounce forwards the last event of every burst on in, once wait has
// passed without a newer one. The returned channel is closed when in is
// closed or ctx is done; a pending event is flushed when in closes.
func Debounce(ctx context.Context, in <-chan Event, wait time.Duration) <-chan Event {
	out := make(chan Event)

	go func() {
		defer close(out)

		timer := time.NewTimer(wait)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		var (
			last    Event
			pending bool
		)

		send := func() bool {
			pending = false
			select {
			case out <- last:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case e, ok := <-in:
				if !ok {
					if pending {
						send()
					}
					return
				}
				last = e
				if pending && !timer.Stop() {
					<-timer.C
				}
				pending = true
				timer.Reset(wait)
			case <-timer.C:
				if !send() {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
