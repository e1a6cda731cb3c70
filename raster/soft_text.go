package raster

import "image"
import "math"
import "strings"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/math/f64"
import xdraw "golang.org/x/image/draw"

// Part of the [Surface] interface.
//
// The text run is rasterized into a transparent layer whose origin is
// the style's anchor, then composited onto the surface through an
// affine transform: translation to the anchor plus rotation about it.
// With zero rotation the transform degenerates to a subpixel
// translation, so straight and rotated text go through the same path.
func (self *Soft) Text(content string, style TextStyle) {
	if content == "" { return }
	if style.Size <= 0 { return }

	// elements whose family/weight can't be resolved at all are
	// skipped; with a fallback-carrying library this doesn't happen
	face, err := self.fonts.Face(style.Family, style.Weight, style.Size)
	if err != nil { return }
	defer face.Close()

	layer := renderTextLayer(face, content, style)
	if layer == nil { return }

	sin, cos := math.Sincos(style.Rotation * math.Pi / 180)
	matrix := f64.Aff3 {
		cos, -sin, style.X,
		sin,  cos, style.Y,
	}
	xdraw.BiLinear.Transform(self.pixels, matrix, layer, layer.Bounds(), xdraw.Over, nil)
}

// Draws the styled lines into a fresh transparent RGBA layer. The
// layer's coordinate space has (0, 0) at the text anchor: centered
// and right-aligned lines extend into negative x, and the first
// baseline sits one ascent below y = 0 so the anchor is the top-left
// of the text box. Returns nil if there's nothing to draw.
func renderTextLayer(face font.Face, content string, style TextStyle) *image.RGBA {
	lines := strings.Split(content, "\n")
	hasInk := false
	for _, line := range lines {
		if line != "" { hasInk = true }
	}
	if !hasInk { return nil }

	lineHeight := style.LineHeight
	if lineHeight <= 0 { lineHeight = 1.2 }
	lineAdvance := style.Size * lineHeight

	// measure every line and derive its alignment offset
	minX, maxX := math.Inf(1), math.Inf(-1)
	offsets := make([]float64, len(lines))
	for index, line := range lines {
		width := measureLine(face, line, style.LetterSpacing)
		var offset float64
		switch style.Align {
		case Center: offset = -width/2
		case Right: offset = -width
		}
		offsets[index] = offset
		if offset < minX { minX = offset }
		if offset + width > maxX { maxX = offset + width }
	}

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	height := lineAdvance*float64(len(lines) - 1) + ascent + descent

	// pad slightly for antialiasing spill
	const pad = 2
	rect := image.Rect(
		int(math.Floor(minX)) - pad, -pad,
		int(math.Ceil(maxX)) + pad, int(math.Ceil(height)) + pad,
	)
	layer := image.NewRGBA(rect)

	drawer := font.Drawer {
		Dst: layer,
		Src: image.NewUniform(parseHexColor(style.Color)),
		Face: face,
	}
	for index, line := range lines {
		if line == "" { continue }
		drawer.Dot = fixed.Point26_6 {
			X: floatToFixed(offsets[index]),
			Y: floatToFixed(ascent + lineAdvance*float64(index)),
		}
		drawLine(&drawer, line, style.LetterSpacing)
	}
	return layer
}

// Advance width of a single line, letter spacing included. Without
// spacing we defer to [font.MeasureString] so kerning matches
// [font.Drawer.DrawString]; with spacing both measuring and drawing
// go glyph by glyph, which drops kerning consistently on both sides.
func measureLine(face font.Face, line string, spacing float64) float64 {
	if spacing == 0 { return fixedToFloat(font.MeasureString(face, line)) }
	total, count := 0.0, 0
	for _, codePoint := range line {
		advance, ok := face.GlyphAdvance(codePoint)
		if !ok {
			// unmapped code points still get drawn as the replacement
			// glyph, so measure them as that glyph too
			advance, _ = face.GlyphAdvance('\uFFFD')
		}
		total += fixedToFloat(advance)
		count += 1
	}
	if count > 1 { total += spacing*float64(count - 1) }
	return total
}

func drawLine(drawer *font.Drawer, line string, spacing float64) {
	if spacing == 0 {
		drawer.DrawString(line)
		return
	}
	first := true
	for _, codePoint := range line {
		if !first { drawer.Dot.X += floatToFixed(spacing) }
		drawer.DrawString(string(codePoint))
		first = false
	}
}

func floatToFixed(value float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(value*64))
}

func fixedToFloat(value fixed.Int26_6) float64 {
	return float64(value)/64
}
