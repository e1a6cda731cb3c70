package stamp

import "sync"
import "time"

// A Publisher receives the full element collection after every canvas
// mutation. This is the editor's sole write path towards persistence:
// the canvas never reads anything back through it during a session.
//
// Publish must not block; the canvas calls it synchronously on the UI
// callback chain and ignores its outcome entirely. Publishers doing
// real I/O should buffer and settle on their own goroutine (or be
// wrapped in [Debounced]). Retrying and error logging are the
// publisher's responsibility; the canvas's in-memory state remains the
// source of truth for the rest of the session either way.
//
// Publish receives an isolated snapshot, so implementations may keep
// or mutate the slice freely.
type Publisher interface {
	Publish(elements []Element)
}

// Adapter to use plain functions as publishers.
type PublisherFunc func(elements []Element)

func (self PublisherFunc) Publish(elements []Element) { self(elements) }

// Debounced coalesces publish bursts. Rapid mutations (dragging,
// keystroke-level attribute edits) each trigger a publish; forwarding
// every one of them would hammer the persistence layer. Debounced
// keeps only the latest snapshot and forwards it to the wrapped
// publisher once the given interval elapses without further publishes.
//
// Intermediate states are dropped on purpose: the only guarantee is
// that the latest collection is eventually forwarded after the last
// mutation. Forwarding happens on an internal goroutine, never on the
// caller's.
type Debounced struct {
	mutex sync.Mutex
	delivery sync.Mutex // serializes target.Publish calls, held across them
	target Publisher
	delay time.Duration
	timer *time.Timer
	pending []Element
	closed bool
}

// Creates a [Debounced] publisher forwarding to target after delay.
func NewDebounced(target Publisher, delay time.Duration) *Debounced {
	return &Debounced{ target: target, delay: delay }
}

// Stores the snapshot as the latest pending state and (re)arms the
// forwarding timer. Returns immediately.
func (self *Debounced) Publish(elements []Element) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.closed { return }
	self.pending = elements
	if self.timer == nil {
		self.timer = time.AfterFunc(self.delay, self.flush)
	} else {
		self.timer.Reset(self.delay)
	}
}

// Stops the timer and synchronously forwards any pending snapshot,
// waiting for any in-flight timer flush first so the latest snapshot
// always lands last at the target. Further publishes are ignored
// after Close. Call it on editor teardown so the last state isn't
// lost to a still-armed timer.
func (self *Debounced) Close() {
	self.mutex.Lock()
	if self.closed {
		self.mutex.Unlock()
		return
	}
	self.closed = true
	if self.timer != nil { self.timer.Stop() }
	pending := self.pending
	self.pending = nil
	self.mutex.Unlock()

	self.delivery.Lock()
	defer self.delivery.Unlock()
	if pending != nil { self.target.Publish(pending) }
}

// Deliveries hold the delivery mutex across target.Publish: a slow
// forward of an older snapshot can't be overtaken by a newer one,
// which would leave the target holding stale state.
func (self *Debounced) flush() {
	self.delivery.Lock()
	defer self.delivery.Unlock()

	self.mutex.Lock()
	pending := self.pending
	self.pending = nil
	self.mutex.Unlock()

	if pending != nil { self.target.Publish(pending) }
}
