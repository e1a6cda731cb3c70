package stamp

// Identifies a text element within a [Canvas]. Ids are opaque, unique
// within their canvas and stable for the whole lifetime of the element.
// The zero value never identifies a live element.
type ElementID uint64

// NoElement is the zero [ElementID], used to signal "no element".
const NoElement ElementID = 0

// Horizontal text alignment within an element's own box. It governs
// the text drawing anchor: left-aligned lines extend to the right of
// the anchor, centered lines are centered on it, right-aligned lines
// extend to the left.
type Align uint8

const (
	Left Align = iota
	Center
	Right
)

// Returns "left", "center" or "right".
func (self Align) String() string {
	switch self {
	case Left: return "left"
	case Center: return "center"
	case Right: return "right"
	default:
		return "unknown"
	}
}

// An Element is a single positioned text overlay. All coordinates and
// sizes are expressed in display-space pixels (the rendered viewport,
// not the source image's native resolution).
//
// Elements are plain values; the [Canvas] owns the authoritative copy
// and hands out snapshots. Mutating a snapshot has no effect on the
// canvas, use [Canvas.Update]() instead.
type Element struct {
	ID ElementID

	// The text to draw. May contain '\n' line breaks.
	Content string

	// Top-left anchor in display-space pixels. After any interactive
	// move these stay within [0, viewportWidth - 50] and
	// [0, viewportHeight - 20] (see Session).
	X, Y float64

	// Font size in display-space pixels. The bounded UI control keeps
	// it within [12, 120], but programmatic creation is not clamped.
	FontSize float64

	// Font family name, resolved through a font library at draw time.
	FontFamily string

	// Numeric font weight, one of 400, 500, 600, 700, 800.
	FontWeight int

	// Fill color as a hex string, e.g. "#ffcc00".
	Color string

	// Rotation in degrees, range [-180, 180], applied about the
	// element's top-left anchor (not its center).
	Rotation float64

	// Horizontal alignment of the text lines relative to the anchor.
	TextAlign Align

	// Extra advance between glyphs, in display-space pixels.
	LetterSpacing float64

	// Line height as a unitless multiplier of the font size.
	LineHeight float64
}

// Default attribute values for newly added elements. Position is not
// part of the defaults: [Session.Add]() centers new elements in the
// current viewport.
func DefaultElement() Element {
	return Element {
		Content: "New text",
		FontSize: 24,
		FontFamily: "Go",
		FontWeight: 400,
		Color: "#ffffff",
		Rotation: 0,
		TextAlign: Left,
		LetterSpacing: 0,
		LineHeight: 1.2,
	}
}

// A Patch is a partial set of element attributes for [Canvas.Update]().
// Nil fields are left untouched; non-nil fields replace the element's
// current value. Patches are built with the With* chaining helpers:
//
//	canvas.Update(id, stamp.Patch{}.WithPosition(40, 60).WithFontSize(32))
type Patch struct {
	Content *string
	X, Y *float64
	FontSize *float64
	FontFamily *string
	FontWeight *int
	Color *string
	Rotation *float64
	TextAlign *Align
	LetterSpacing *float64
	LineHeight *float64
}

func (self Patch) WithContent(content string) Patch {
	self.Content = &content
	return self
}

func (self Patch) WithPosition(x, y float64) Patch {
	self.X, self.Y = &x, &y
	return self
}

func (self Patch) WithFontSize(size float64) Patch {
	self.FontSize = &size
	return self
}

func (self Patch) WithFontFamily(family string) Patch {
	self.FontFamily = &family
	return self
}

func (self Patch) WithFontWeight(weight int) Patch {
	self.FontWeight = &weight
	return self
}

func (self Patch) WithColor(hex string) Patch {
	self.Color = &hex
	return self
}

func (self Patch) WithRotation(degrees float64) Patch {
	self.Rotation = &degrees
	return self
}

func (self Patch) WithAlign(align Align) Patch {
	self.TextAlign = &align
	return self
}

func (self Patch) WithLetterSpacing(spacing float64) Patch {
	self.LetterSpacing = &spacing
	return self
}

func (self Patch) WithLineHeight(multiplier float64) Patch {
	self.LineHeight = &multiplier
	return self
}

// Merges the patch into the given element and returns the result.
// The receiver and the argument are left untouched.
func (self Patch) applyTo(element Element) Element {
	if self.Content != nil { element.Content = *self.Content }
	if self.X != nil { element.X = *self.X }
	if self.Y != nil { element.Y = *self.Y }
	if self.FontSize != nil { element.FontSize = *self.FontSize }
	if self.FontFamily != nil { element.FontFamily = *self.FontFamily }
	if self.FontWeight != nil { element.FontWeight = *self.FontWeight }
	if self.Color != nil { element.Color = *self.Color }
	if self.Rotation != nil { element.Rotation = *self.Rotation }
	if self.TextAlign != nil { element.TextAlign = *self.TextAlign }
	if self.LetterSpacing != nil { element.LetterSpacing = *self.LetterSpacing }
	if self.LineHeight != nil { element.LineHeight = *self.LineHeight }
	return element
}
