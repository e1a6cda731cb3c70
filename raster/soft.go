package raster

import "io"
import "image"
import "image/color"
import "image/draw"
import "image/png"
import "errors"

import xdraw "golang.org/x/image/draw"
import "github.com/lucasb-eyer/go-colorful"

import fontlib "github.com/lunavik/stamp/font"

var ErrBadSurfaceSize = errors.New("surface dimensions must be positive")

// Soft is a software [Surface]: an RGBA pixel buffer drawn with
// image/draw and golang.org/x/image fonts. It needs no display and no
// GPU, which makes it the default backend for headless exports and
// for tests.
type Soft struct {
	pixels *image.RGBA
	fonts *fontlib.Library
}

// Creates a software surface of the given pixel size. Fonts are
// resolved through the given library; a nil library falls back to
// [fontlib.DefaultLibrary]().
func NewSoft(width, height int, fonts *fontlib.Library) (*Soft, error) {
	if width <= 0 || height <= 0 { return nil, ErrBadSurfaceSize }
	if fonts == nil { fonts = fontlib.DefaultLibrary() }
	return &Soft {
		pixels: image.NewRGBA(image.Rect(0, 0, width, height)),
		fonts: fonts,
	}, nil
}

// Returns a [Provider] acquiring [Soft] surfaces backed by the given
// font library.
func SoftProvider(fonts *fontlib.Library) Provider {
	return func(width, height int) (Surface, error) {
		return NewSoft(width, height, fonts)
	}
}

// Part of the [Surface] interface.
func (self *Soft) Size() (width, height int) {
	bounds := self.pixels.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Gives direct access to the surface's pixel buffer. Mostly useful
// for tests and for hosts that want to display the composite without
// re-decoding the PNG.
func (self *Soft) Pixels() *image.RGBA { return self.pixels }

// Part of the [Surface] interface. Sources matching the surface size
// are copied 1:1; anything else is stretched with bilinear sampling.
func (self *Soft) Fill(src image.Image) {
	bounds := self.pixels.Bounds()
	if src.Bounds().Dx() == bounds.Dx() && src.Bounds().Dy() == bounds.Dy() {
		draw.Draw(self.pixels, bounds, src, src.Bounds().Min, draw.Src)
		return
	}
	xdraw.BiLinear.Scale(self.pixels, bounds, src, src.Bounds(), xdraw.Src, nil)
}

// Part of the [Surface] interface.
func (self *Soft) Encode(writer io.Writer) error {
	return png.Encode(writer, self.pixels)
}

// Parses a "#rgb" / "#rrggbb" hex string. Unparseable values fall
// back to opaque black, matching the usual canvas default fill.
func parseHexColor(hex string) color.Color {
	parsed, err := colorful.Hex(hex)
	if err != nil { return color.RGBA{0, 0, 0, 255} }
	return parsed
}
