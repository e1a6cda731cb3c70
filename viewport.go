package stamp

// A Viewport tracks the live display-space size of the image viewport:
// the rendered bounding box of the image container, not the source
// image's native resolution.
//
// The dimensions feed exactly two consumers: drag clamping in
// [Session] and the display→native scale computation in [Exporter].
// They are never persisted.
type Viewport struct {
	width float64
	height float64
	release func()
}

// Creates a [Viewport] with the given initial display-space size.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{ width: width, height: height }
}

// Returns the current display-space dimensions.
func (self *Viewport) Size() (width, height float64) {
	return self.width, self.height
}

// Updates the display-space dimensions. Call this from the resize
// callback of whatever is hosting the image container, or let
// [Viewport.Track]() do it for you.
func (self *Viewport) SetSize(width, height float64) {
	self.width = width
	self.height = height
}

// A ResizeNotifier reports size changes of the rendered image
// container. Subscribe registers a callback, invokes it once with the
// current size, and returns a cancel function that must stop further
// callbacks. UI hosts implement this over their own resize events.
type ResizeNotifier interface {
	Subscribe(fn func(width, height float64)) (cancel func())
}

// Subscribes the viewport to the given notifier so its dimensions
// follow the container's rendered size. Any previous subscription is
// released first, so re-tracking across host remounts is safe.
func (self *Viewport) Track(notifier ResizeNotifier) {
	self.Release()
	self.release = notifier.Subscribe(self.SetSize)
}

// Releases the current resize subscription, if any. Must be called on
// host teardown; it is idempotent.
func (self *Viewport) Release() {
	if self.release == nil { return }
	self.release()
	self.release = nil
}
