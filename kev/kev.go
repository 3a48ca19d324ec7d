// Package kev provides binary kernel events.
//
// Drivers hand out events to signal hardware completion to tasks. An event
// is either signaled or not, further signals coalesce until the next wait
// consumes the pending signal. Closing an event withdraws it permanently,
// which is the designed way to terminate a task blocked on it.
package kev

// Event is a binary event owned by the driver that created it.
type Event struct {
	c chan struct{}
}

func NewEvent() *Event {
	return &Event{c: make(chan struct{}, 1)}
}

// Signal marks the event signaled. Signaling an already signaled event is a
// no-op. Must not be called after Close.
func (e *Event) Signal() {
	select {
	case e.c <- struct{}{}:
	default:
	}
}

// Wait blocks until the event is signaled and consumes the signal. It
// returns false if the event was closed, in which case the caller must not
// wait again. A signal pending at close time is still delivered first.
func (e *Event) Wait() bool {
	_, ok := <-e.c
	return ok
}

// Close destroys the event and releases all waiters. Only the owning driver
// may close an event, and only after it stopped signaling it.
func (e *Event) Close() {
	close(e.c)
}
