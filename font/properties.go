package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested naming-table property for the given font.
// If the property is missing, [ErrNotFound] is returned.
func GetProperty(sfntFont *sfnt.Font, property sfnt.NameID) (string, error) {
	var buffer sfnt.Buffer
	value, err := sfntFont.Name(&buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// Returns the family name of the given font (e.g. "Go"). If the
// information is missing, [ErrNotFound] is returned.
func GetFamily(sfntFont *sfnt.Font) (string, error) {
	return GetProperty(sfntFont, sfnt.NameIDFamily)
}

// Returns the subfamily of the given font. In most cases the value
// is one of Regular, Italic, Bold or Bold Italic.
func GetSubfamily(sfntFont *sfnt.Font) (string, error) {
	return GetProperty(sfntFont, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font (e.g. "Go Medium"). If the
// information is missing, [ErrNotFound] is returned.
func GetName(sfntFont *sfnt.Font) (string, error) {
	return GetProperty(sfntFont, sfnt.NameIDFull)
}
