package stamp

// A Canvas is the ordered collection of text elements placed over the
// base image. Element order is insertion order; it has no meaning
// beyond stable iteration, with later elements drawing on top of
// earlier ones.
//
// The canvas is the durable half of the editor state: it is seeded
// from the last persisted collection at startup and re-published
// through its [Publisher] after every mutation. Selection and drag
// state are deliberately kept out of it (see [Session]).
//
// A canvas is not safe for concurrent use. The expected model is a
// single event-driven owner: all mutations happen on UI callback
// dispatch, and publishing is the publisher's problem.
type Canvas struct {
	elements []Element
	lastID ElementID
	publisher Publisher
}

// Creates an empty [Canvas]. The publisher may be nil, in which case
// mutations are not published anywhere.
func NewCanvas(publisher Publisher) *Canvas {
	return &Canvas{ publisher: publisher }
}

// Creates a [Canvas] seeded from a previously persisted collection.
// Element ids are preserved; the internal id counter resumes above
// the highest seeded id so new elements never collide.
func SeedCanvas(publisher Publisher, elements []Element) *Canvas {
	canvas := NewCanvas(publisher)
	canvas.elements = make([]Element, len(elements))
	copy(canvas.elements, elements)
	for _, element := range canvas.elements {
		if element.ID > canvas.lastID { canvas.lastID = element.ID }
	}
	return canvas
}

// Returns the current number of elements in the canvas.
func (self *Canvas) Len() int { return len(self.elements) }

// Returns the element with the given id. The second result is false
// if no element matches.
func (self *Canvas) Get(id ElementID) (Element, bool) {
	for _, element := range self.elements {
		if element.ID == id { return element, true }
	}
	return Element{}, false
}

// Returns a snapshot of the collection in insertion order. The
// returned slice is an isolated copy; callers can hold onto it or
// mutate it freely without affecting the canvas.
func (self *Canvas) Elements() []Element {
	snapshot := make([]Element, len(self.elements))
	copy(snapshot, self.elements)
	return snapshot
}

// Calls the given function for each element in insertion order.
// Stops early if the function returns false.
func (self *Canvas) EachElement(fn func(Element) bool) {
	for _, element := range self.elements {
		if !fn(element) { return }
	}
}

// Appends the given element to the canvas, assigning it a fresh id
// (any id already set on the prototype is ignored). Returns the new id.
func (self *Canvas) Insert(prototype Element) ElementID {
	self.lastID += 1
	prototype.ID = self.lastID
	self.elements = append(self.elements, prototype)
	self.publish()
	return prototype.ID
}

// Merges the given patch into the element with the matching id.
// Updates are copy-on-write: the stored value is replaced wholesale
// and no other element is touched. Unknown ids are a no-op; stale
// callbacks racing a deletion are expected and harmless.
func (self *Canvas) Update(id ElementID, patch Patch) {
	for index, element := range self.elements {
		if element.ID != id { continue }
		self.elements[index] = patch.applyTo(element)
		self.publish()
		return
	}
}

// Removes the element with the given id. Unknown ids are a no-op.
func (self *Canvas) Remove(id ElementID) {
	for index, element := range self.elements {
		if element.ID != id { continue }
		self.elements = append(self.elements[ : index], self.elements[index + 1 : ]...)
		self.publish()
		return
	}
}

// Hands the current snapshot to the publisher. Publishing is
// fire-and-forget: the canvas never waits on it and failures never
// reach the interactive path. Publishers that do real I/O are
// expected to return promptly and settle on their own (see
// [Debounced]).
func (self *Canvas) publish() {
	if self.publisher == nil { return }
	self.publisher.Publish(self.Elements())
}
