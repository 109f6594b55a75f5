package input

import (
	"sync"

	"github.com/zyedidia/generic/list"
)

// DefaultQueueSize is the buffer used by renderers that feed a Queue.
const DefaultQueueSize = 64

// Queue carries events from a renderer to the single goroutine that applies
// them. Events are delivered in the order they were pushed and Push never
// blocks. When the buffer is full the oldest buffered hover event (enter or
// leave) is discarded to make room. The newest event is always kept and
// clicks are never discarded, so a buffer holding only clicks grows past size.
type Queue struct {
	mu     sync.Mutex
	events *list.List[Event]
	length int
	size   int
	ready  chan struct{}
	closed bool
}

// NewQueue creates a queue buffering up to size events
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{
		events: list.New[Event](),
		size:   size,
		ready:  make(chan struct{}, 1),
	}
}

// Push enqueues an event without blocking. When an older hover event had to
// be discarded to keep the buffer bounded, it is returned with ok set.
// Pushing to a closed queue is a no-op.
func (q *Queue) Push(ev Event) (dropped Event, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return Event{}, false
	}
	if q.length >= q.size {
		dropped, ok = q.dropOldestHover()
	}
	q.events.PushBack(ev)
	q.length++

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return dropped, ok
}

// dropOldestHover removes the first buffered enter or leave event. Any later
// hover event in the buffer supersedes it, as does the event being pushed.
func (q *Queue) dropOldestHover() (Event, bool) {
	for node := q.events.Front; node != nil; node = node.Next {
		if node.Value.Kind == EventEnter || node.Value.Kind == EventLeave {
			q.events.Remove(node)
			q.length--
			return node.Value, true
		}
	}
	return Event{}, false
}

// Ready signals that events may be waiting. It is closed by Close, after
// which Drain returns whatever is still buffered.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Drain removes and returns all buffered events in push order
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := make([]Event, 0, q.length)
	for node := q.events.Front; node != nil; node = node.Next {
		events = append(events, node.Value)
	}
	q.events = list.New[Event]()
	q.length = 0
	return events
}

// Len returns the number of buffered events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.length
}

// Close stops the queue. Buffered events can still be drained.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ready)
}
