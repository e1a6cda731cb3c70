// raster defines the drawing surface capability used by the export
// pipeline, plus a software implementation built on image/draw and
// golang.org/x/image fonts.
//
// The capability split keeps the rasterization algorithm testable
// without a real display and lets non-browser-like hosts plug in
// their own rasterizer (GPU, ebiten, whatever) behind the same three
// operations: fill with the base image, draw styled text, encode.
package raster

import "io"
import "image"

// Horizontal alignment of text lines relative to the drawing anchor.
// Left-aligned lines extend right of the anchor, centered lines are
// centered on it, right-aligned lines extend left, mirroring the
// usual 2D canvas semantics.
type Align uint8

const (
	Left Align = iota
	Center
	Right
)

// A TextStyle carries everything needed to draw one text run onto a
// [Surface]. All coordinates and sizes are native-space pixels; the
// caller is responsible for any display→native scaling.
type TextStyle struct {
	// Anchor: the top-left reference point of the text box. Origin
	// for rotation and alignment.
	X, Y float64

	// Font size in native pixels.
	Size float64

	// Font family and numeric weight, resolved by the surface's font
	// source. Unknown combinations resolve to the nearest available
	// weight, then to the fallback family.
	Family string
	Weight int

	// Fill color as a hex string ("#rgb" or "#rrggbb"). Unparseable
	// values fall back to opaque black.
	Color string

	// Rotation in degrees about the anchor. Positive values rotate
	// clockwise in the usual y-down raster coordinate system.
	Rotation float64

	// Horizontal alignment of each line relative to the anchor.
	Align Align

	// Extra advance between glyphs, in native pixels.
	LetterSpacing float64

	// Line height as a multiplier of Size. Values <= 0 mean 1.2.
	LineHeight float64
}

// A Surface is a rasterization target of fixed pixel size.
//
// Implementations don't need to be safe for concurrent use; the
// export pipeline owns a surface exclusively from acquisition to
// encoding.
type Surface interface {
	// Draws the given image covering the whole surface. Sources whose
	// size differs from the surface are stretched to fit.
	Fill(src image.Image)

	// Draws the given text content with the given style. Content may
	// contain '\n' line breaks.
	Text(content string, style TextStyle)

	// Encodes the surface's current pixels as PNG.
	Encode(writer io.Writer) error

	// Returns the surface's pixel dimensions.
	Size() (width, height int)
}

// A Provider acquires surfaces for the export pipeline. Acquisition
// may fail (e.g. a host rasterizer being unavailable); the pipeline
// treats that as an abort.
type Provider func(width, height int) (Surface, error)
