package raster

import "bytes"
import "image"
import "image/color"
import "image/png"
import "math"
import "testing"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import fontlib "github.com/lunavik/stamp/font"

func newTestSurface(t *testing.T, width, height int) *Soft {
	t.Helper()
	surface, err := NewSoft(width, height, fontlib.DefaultLibrary())
	if err != nil { t.Fatalf("creating surface: %s", err) }
	return surface
}

// Bounding box of all pixels with non-zero alpha. ok is false when
// the surface is fully transparent.
func inkBounds(surface *Soft) (bounds image.Rectangle, ok bool) {
	pixels := surface.Pixels()
	minX, minY := math.MaxInt32, math.MaxInt32
	maxX, maxY := -1, -1
	rect := pixels.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			_, _, _, alpha := pixels.At(x, y).RGBA()
			if alpha == 0 { continue }
			if x < minX { minX = x }
			if y < minY { minY = y }
			if x > maxX { maxX = x }
			if y > maxY { maxY = y }
		}
	}
	if maxX == -1 { return image.Rectangle{}, false }
	return image.Rect(minX, minY, maxX + 1, maxY + 1), true
}

func uniformImage(width, height int, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for index := 0; index < len(img.Pix); index += 4 {
		img.Pix[index + 0] = fill.R
		img.Pix[index + 1] = fill.G
		img.Pix[index + 2] = fill.B
		img.Pix[index + 3] = fill.A
	}
	return img
}

func TestNewSoftBadSize(t *testing.T) {
	for _, size := range [][2]int{ {0, 10}, {10, 0}, {-3, 5}, {0, 0} } {
		_, err := NewSoft(size[0], size[1], nil)
		if err != ErrBadSurfaceSize {
			t.Fatalf("size %v: expected ErrBadSurfaceSize, got %v", size, err)
		}
	}
}

func TestSoftProvider(t *testing.T) {
	provider := SoftProvider(nil) // nil falls back to the default library
	surface, err := provider(64, 32)
	if err != nil { t.Fatalf("unexpected provider error: %s", err) }
	width, height := surface.Size()
	if width != 64 || height != 32 {
		t.Fatalf("expected 64x32 surface, got %dx%d", width, height)
	}
}

func TestFillExactSize(t *testing.T) {
	surface := newTestSurface(t, 4, 4)
	red := color.RGBA{255, 0, 0, 255}
	surface.Fill(uniformImage(4, 4, red))
	if surface.Pixels().RGBAAt(2, 2) != red {
		t.Fatalf("expected red at (2,2), got %v", surface.Pixels().RGBAAt(2, 2))
	}
}

func TestFillStretches(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(1, 0, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	src.SetRGBA(1, 1, color.RGBA{0, 0, 255, 255})

	surface := newTestSurface(t, 8, 8)
	surface.Fill(src)
	top := surface.Pixels().RGBAAt(4, 0)
	bottom := surface.Pixels().RGBAAt(4, 7)
	if top.R < 200 || top.B > 55 { t.Fatalf("expected red-ish top row, got %v", top) }
	if bottom.B < 200 || bottom.R > 55 { t.Fatalf("expected blue-ish bottom row, got %v", bottom) }
}

func TestTextLeftAlignedAtAnchor(t *testing.T) {
	surface := newTestSurface(t, 300, 120)
	surface.Text("Hello", TextStyle {
		X: 20, Y: 10, Size: 32, Family: "Go", Weight: 400, Color: "#000000",
	})

	ink, ok := inkBounds(surface)
	if !ok { t.Fatal("text drew no ink at all") }
	if ink.Min.X < 16 { t.Fatalf("left-aligned ink starts at x=%d, left of the anchor", ink.Min.X) }
	if ink.Min.Y < 6 { t.Fatalf("ink starts at y=%d, above the top-left anchor", ink.Min.Y) }
	if ink.Max.X > 300 || ink.Max.Y > 120 { t.Fatal("ink escaped the surface") }
}

func TestTextCenterAligned(t *testing.T) {
	surface := newTestSurface(t, 300, 120)
	surface.Text("Hello", TextStyle {
		X: 150, Y: 10, Size: 32, Family: "Go", Weight: 400,
		Color: "#000000", Align: Center,
	})
	ink, ok := inkBounds(surface)
	if !ok { t.Fatal("text drew no ink at all") }
	if ink.Min.X >= 150 || ink.Max.X <= 150 {
		t.Fatalf("centered ink %v must straddle the anchor x=150", ink)
	}
}

func TestTextRightAligned(t *testing.T) {
	surface := newTestSurface(t, 300, 120)
	surface.Text("Hello", TextStyle {
		X: 200, Y: 10, Size: 32, Family: "Go", Weight: 400,
		Color: "#000000", Align: Right,
	})
	ink, ok := inkBounds(surface)
	if !ok { t.Fatal("text drew no ink at all") }
	if ink.Max.X > 206 { t.Fatalf("right-aligned ink ends at x=%d, past the anchor", ink.Max.X) }
}

func TestTextRotationAboutAnchor(t *testing.T) {
	surface := newTestSurface(t, 300, 300)
	surface.Text("Hello", TextStyle {
		X: 150, Y: 40, Size: 32, Family: "Go", Weight: 400,
		Color: "#000000", Rotation: 90, // clockwise: text runs downward, left of the anchor
	})
	ink, ok := inkBounds(surface)
	if !ok { t.Fatal("text drew no ink at all") }
	if ink.Max.X > 156 { t.Fatalf("rotated ink ends at x=%d, right of the anchor", ink.Max.X) }
	if ink.Dy() <= ink.Dx() { t.Fatalf("90° rotated ink %v should be taller than wide", ink) }
}

func TestTextMultiLine(t *testing.T) {
	single := newTestSurface(t, 300, 300)
	single.Text("A", TextStyle {
		X: 20, Y: 10, Size: 20, Family: "Go", Weight: 400, Color: "#000000",
	})
	double := newTestSurface(t, 300, 300)
	double.Text("A\nA", TextStyle {
		X: 20, Y: 10, Size: 20, Family: "Go", Weight: 400,
		Color: "#000000", LineHeight: 2, // 40px between baselines
	})

	singleInk, ok := inkBounds(single)
	if !ok { t.Fatal("single line drew no ink") }
	doubleInk, ok := inkBounds(double)
	if !ok { t.Fatal("double line drew no ink") }
	grown := doubleInk.Dy() - singleInk.Dy()
	if grown < 35 || grown > 45 {
		t.Fatalf("second line at lineHeight 2 should add ~40px of ink height, added %d", grown)
	}
}

func TestTextEmptyContent(t *testing.T) {
	surface := newTestSurface(t, 50, 50)
	surface.Text("", TextStyle{ X: 10, Y: 10, Size: 20, Color: "#000000" })
	surface.Text("\n\n", TextStyle{ X: 10, Y: 10, Size: 20, Color: "#000000" })
	if _, ok := inkBounds(surface); ok { t.Fatal("empty content drew ink") }
}

func TestMeasureLineLetterSpacing(t *testing.T) {
	library := fontlib.DefaultLibrary()
	face, err := library.Face("Go", 400, 24)
	if err != nil { t.Fatalf("face error: %s", err) }
	defer face.Close()

	plain := measureLine(face, "HHHH", 0)
	spaced := measureLine(face, "HHHH", 10)
	grown := spaced - plain
	// 3 inter-glyph gaps; kerning differences between the two
	// measuring paths stay way under a pixel for this input
	if grown < 29 || grown > 31 {
		t.Fatalf("expected ~30px of extra advance, got %g", grown)
	}
}

// font.Face stub with a fixed advance table; runes outside it report
// ok == false, like sparse faces do for unmapped code points.
type stubFace struct {
	advances map[rune]fixed.Int26_6
}

func (self *stubFace) Close() error { return nil }
func (self *stubFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }
func (self *stubFace) Metrics() font.Metrics { return font.Metrics{} }

func (self *stubFace) GlyphAdvance(codePoint rune) (fixed.Int26_6, bool) {
	advance, ok := self.advances[codePoint]
	return advance, ok
}

func (self *stubFace) Glyph(dot fixed.Point26_6, codePoint rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	advance, ok := self.advances[codePoint]
	return image.Rectangle{}, nil, image.Point{}, advance, ok
}

func (self *stubFace) GlyphBounds(codePoint rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	advance, ok := self.advances[codePoint]
	return fixed.Rectangle26_6{}, advance, ok
}

func TestMeasureLineUnmappedCodePoints(t *testing.T) {
	face := &stubFace{ advances: map[rune]fixed.Int26_6 {
		'A': 10*64,
		'\uFFFD': 8*64,
	}}

	// the unmapped rune must be measured as the replacement glyph,
	// not dropped: 10 + 8 + 10 plus two 5px letter spacing gaps
	width := measureLine(face, "A\uE000A", 5)
	if width != 38 {
		t.Fatalf("expected width 38 with replacement-glyph fallback, got %g", width)
	}
}

func TestParseHexColor(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	tests := []struct {
		in string
		out color.RGBA
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"", black}, {"bogus", black}, {"ff0000", black},
	}
	for i, test := range tests {
		parsed := parseHexColor(test.in)
		r, g, b, a := parsed.RGBA()
		got := color.RGBA{ uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8) }
		if got != test.out {
			t.Fatalf("test #%d: %q parsed to %v, expected %v", i, test.in, got, test.out)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	surface := newTestSurface(t, 33, 17)
	surface.Fill(uniformImage(33, 17, color.RGBA{10, 20, 30, 255}))

	var buffer bytes.Buffer
	err := surface.Encode(&buffer)
	if err != nil { t.Fatalf("encode error: %s", err) }

	decoded, err := png.Decode(&buffer)
	if err != nil { t.Fatalf("decoding the encoded PNG: %s", err) }
	bounds := decoded.Bounds()
	if bounds.Dx() != 33 || bounds.Dy() != 17 {
		t.Fatalf("expected 33x17, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
