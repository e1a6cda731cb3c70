package font

import "errors"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/opentype"

// Common numeric font weights, as used in CSS and OpenType.
const (
	Regular = 400
	Medium = 500
	SemiBold = 600
	Bold = 700
	ExtraBold = 800
)

var ErrNilFont = errors.New("can't register nil font")
var ErrAlreadyRegistered = errors.New("font already registered for family and weight")

// Special error that can be returned from [Library.EachFont]() callbacks
// to break early without the library reporting an error.
var ErrBreakEach = errors.New("internal: EachFont break")

// A collection of fonts keyed by family name and numeric weight.
//
// The goal of a library is to let callers reference fonts
// symbolically, the way overlay elements store them ("Inter", 600),
// and still always resolve to something drawable: lookups fall back
// to the nearest registered weight within the family, and then to the
// library's fallback family.
type Library struct {
	families map[string]map[int]*sfnt.Font
	fallback string
}

// Creates a new, empty font [Library] with no fallback family.
// See also [DefaultLibrary]().
func NewLibrary() *Library {
	return &Library {
		families: make(map[string]map[int]*sfnt.Font),
	}
}

// Returns the total number of fonts in the library, all families and
// weights included.
func (self *Library) Size() int {
	total := 0
	for _, weights := range self.families {
		total += len(weights)
	}
	return total
}

// Finds out whether the library has any font for the given family.
func (self *Library) HasFamily(family string) bool {
	_, found := self.families[family]
	return found
}

// Registers a font under the given family name and weight. Returns
// [ErrAlreadyRegistered] if the slot is already taken. The first
// registered family becomes the fallback family unless one has been
// set explicitly.
func (self *Library) Register(family string, weight int, sfntFont *sfnt.Font) error {
	if sfntFont == nil { return ErrNilFont }
	weights, found := self.families[family]
	if !found {
		weights = make(map[int]*sfnt.Font)
		self.families[family] = weights
		if self.fallback == "" { self.fallback = family }
	}
	_, taken := weights[weight]
	if taken { return ErrAlreadyRegistered }
	weights[weight] = sfntFont
	return nil
}

// Sets the family that lookups resolve to when the requested family
// is not in the library.
func (self *Library) SetFallback(family string) { self.fallback = family }

// Returns the current fallback family name.
func (self *Library) Fallback() string { return self.fallback }

// Returns the font registered for the given family whose weight is
// closest to the requested one (ties resolve to the lighter weight).
// Unknown families resolve through the fallback family. Returns nil
// only if neither the family nor the fallback have any font.
func (self *Library) Lookup(family string, weight int) *sfnt.Font {
	weights, found := self.families[family]
	if !found { weights, found = self.families[self.fallback] }
	if !found { return nil }

	var best *sfnt.Font
	bestWeight, bestDist := 0, -1
	for registered, sfntFont := range weights {
		dist := registered - weight
		if dist < 0 { dist = -dist }
		betterTie := (dist == bestDist && registered < bestWeight)
		if bestDist == -1 || dist < bestDist || betterTie {
			best, bestWeight, bestDist = sfntFont, registered, dist
		}
	}
	return best
}

// Calls the given function for each font in the library. Iteration
// order is undefined. If the function returns a non-nil error,
// iteration stops; [ErrBreakEach] stops it while making EachFont
// still return nil.
func (self *Library) EachFont(fn func(family string, weight int, sfntFont *sfnt.Font) error) error {
	for family, weights := range self.families {
		for weight, sfntFont := range weights {
			err := fn(family, weight, sfntFont)
			if err == ErrBreakEach { return nil }
			if err != nil { return err }
		}
	}
	return nil
}

// Resolves the given family and weight (see [Library.Lookup]() rules)
// and creates a drawable face of the given pixel size. The returned
// face must be closed by the caller and is not safe for concurrent
// use.
func (self *Library) Face(family string, weight int, size float64) (xfont.Face, error) {
	sfntFont := self.Lookup(family, weight)
	if sfntFont == nil {
		return nil, errors.New("no font registered for family '" + family + "'")
	}
	return opentype.NewFace(sfntFont, &opentype.FaceOptions {
		Size: size,
		DPI: 72, // size is already in pixels, keep the 1:1 mapping
		Hinting: xfont.HintingNone,
	})
}
