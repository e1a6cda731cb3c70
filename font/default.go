package font

import "sync"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gomedium"
import "golang.org/x/image/font/gofont/gobold"

// DefaultFamily is the family name of the embedded fonts registered
// by [DefaultLibrary]().
const DefaultFamily = "Go"

var defaultFontsOnce sync.Once
var defaultRegular *sfnt.Font
var defaultMedium *sfnt.Font
var defaultBold *sfnt.Font

// Creates a [Library] preloaded with the embedded Go fonts: family
// "Go" at weights 400 (regular), 500 (medium) and 700 (bold), with
// "Go" as the fallback family. Thanks to nearest-weight resolution,
// any weight in the 400-800 range resolves to one of the three.
//
// Each call returns a fresh library (so callers can register more
// fonts without affecting each other), but the embedded fonts are
// parsed only once.
func DefaultLibrary() *Library {
	defaultFontsOnce.Do(func() {
		defaultRegular = mustParse(goregular.TTF)
		defaultMedium = mustParse(gomedium.TTF)
		defaultBold = mustParse(gobold.TTF)
	})

	library := NewLibrary()
	_ = library.Register(DefaultFamily, Regular, defaultRegular)
	_ = library.Register(DefaultFamily, Medium, defaultMedium)
	_ = library.Register(DefaultFamily, Bold, defaultBold)
	return library
}

func mustParse(fontBytes []byte) *sfnt.Font {
	sfntFont, err := sfnt.Parse(fontBytes)
	if err != nil { panic("embedded font: " + err.Error()) } // unreachable
	return sfntFont
}
