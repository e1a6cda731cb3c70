package font

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also returning the font's family
// name. The bytes must not be modified while the font is in use.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	family, err := GetFamily(newFont)
	return newFont, family, err
}

// Attempts to parse the font at the given filepath and returns it
// along its family name. Supported formats are .ttf and .otf.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file)
}

// Parses the given font bytes and registers the font in the library
// under its own family name and the given weight. Returns the family
// name under which it was registered.
func (self *Library) RegisterBytes(weight int, fontBytes []byte) (string, error) {
	sfntFont, family, err := ParseFromBytes(fontBytes)
	if err != nil { return family, err }
	return family, self.Register(family, weight, sfntFont)
}

// Like [Library.RegisterBytes](), but parsing from a filepath.
func (self *Library) RegisterPath(weight int, path string) (string, error) {
	sfntFont, family, err := ParseFromPath(path)
	if err != nil { return family, err }
	return family, self.Register(family, weight, sfntFont)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes)
}

// Whether the font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	ext := path[len(path) - 4 : ]
	return ext == ".ttf" || ext == ".otf"
}
