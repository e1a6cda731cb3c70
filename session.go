package stamp

// Reserved drag margins, in display-space pixels. Clamping keeps an
// element's anchor at least this far inside the right/bottom viewport
// edges so the drag handle never leaves the visible area. The margins
// are fixed constants independent of the element's measured text box;
// a known approximation, since text boxes vary with font size and
// content.
const (
	DragMarginX = 50
	DragMarginY = 20
)

// Ephemeral drag state: the dragged element's id and the pointer's
// initial displacement from its anchor. Discarded on drag end.
type dragState struct {
	active bool
	id ElementID
	offsetX float64
	offsetY float64
}

// A Session is the interaction half of the editor: it converts pointer
// events into selection, drag and mutation transitions on a [Canvas],
// clamped against a [Viewport].
//
// The session is a three-state machine: idle, selected and dragging.
// At most one element is selected and at most one element can be in
// the dragging state at any instant. All of it is local, ephemeral
// state; none of it is ever persisted.
//
// Pointer coordinates passed to the session must be relative to the
// image container's bounding box origin. The session keeps computing
// container-relative deltas even if the pointer visually leaves the
// container; the clamp is the only boundary enforced.
type Session struct {
	canvas *Canvas
	viewport *Viewport
	selected ElementID
	drag dragState
}

// Creates a [Session] operating on the given canvas and viewport.
func NewSession(canvas *Canvas, viewport *Viewport) *Session {
	return &Session{ canvas: canvas, viewport: viewport }
}

// Returns the id of the currently selected element, or false if the
// session is idle.
func (self *Session) Selected() (ElementID, bool) {
	return self.selected, self.selected != NoElement
}

// Whether a drag is currently in progress.
func (self *Session) Dragging() bool { return self.drag.active }

// Adds a new element with default attributes, centered in the current
// viewport, and selects it. Returns the new element's id.
func (self *Session) Add() ElementID {
	width, height := self.viewport.Size()
	element := DefaultElement()
	element.X = width/2 - DragMarginX
	element.Y = height/2 - DragMarginY
	id := self.canvas.Insert(element)
	self.selected = id
	self.drag = dragState{}
	return id
}

// Removes the element with the given id from the canvas. If it was
// the selected element, the selection is cleared (and any drag on it
// ends). Unknown ids are a no-op.
func (self *Session) Remove(id ElementID) {
	self.canvas.Remove(id)
	if self.selected == id { self.selected = NoElement }
	if self.drag.id == id { self.drag = dragState{} }
}

// Selects the element with the given id without altering its
// position. Selecting an id absent from the canvas is a no-op.
// Selecting a different element while a drag is in progress ends the
// drag; the drag never re-targets.
func (self *Session) Select(id ElementID) {
	_, found := self.canvas.Get(id)
	if !found { return }
	if self.drag.active && self.drag.id != id { self.drag = dragState{} }
	self.selected = id
}

// Clears the selection (click on an empty area, explicit deselect).
// Also ends any drag in progress.
func (self *Session) Deselect() {
	self.selected = NoElement
	self.drag = dragState{}
}

// Pointer pressed on the element with the given id, at the given
// container-relative coordinates. The element becomes selected and a
// drag starts, capturing the pointer's offset from the element's
// anchor. Unknown ids are a no-op.
func (self *Session) PointerDown(id ElementID, pointerX, pointerY float64) {
	element, found := self.canvas.Get(id)
	if !found { return }
	self.selected = id
	self.drag = dragState {
		active: true,
		id: id,
		offsetX: pointerX - element.X,
		offsetY: pointerY - element.Y,
	}
}

// Pointer moved to the given container-relative coordinates. While a
// drag is in progress this moves the dragged element to
// (pointer - offset), hard-clamped to [0, width - DragMarginX] and
// [0, height - DragMarginY]. The clamp is a post-condition of every
// drag move, never relaxed. Outside a drag this is a no-op.
func (self *Session) PointerMove(pointerX, pointerY float64) {
	if !self.drag.active { return }
	width, height := self.viewport.Size()
	x := clamp(pointerX - self.drag.offsetX, 0, width - DragMarginX)
	y := clamp(pointerY - self.drag.offsetY, 0, height - DragMarginY)
	self.canvas.Update(self.drag.id, Patch{}.WithPosition(x, y))
}

// Pointer released. Ends any drag in progress, keeping the dragged
// element selected; the drag offset is discarded.
func (self *Session) PointerUp() {
	self.drag = dragState{}
}

// Pointer left the container. Same transition as [Session.PointerUp]().
func (self *Session) PointerLeave() {
	self.drag = dragState{}
}

// min first so a viewport narrower than the margin still clamps to 0
func clamp(value, low, high float64) float64 {
	if value > high { value = high }
	if value < low { value = low }
	return value
}
