package stamp

import "os"
import "image"
import "errors"
import "path/filepath"

// register the usual raster formats for source decoding
import _ "image/png"
import _ "image/jpeg"
import _ "image/gif"

// A Source supplies the base image for an export. It is established
// before the editor opens and treated as read-only input: a name, the
// native pixel dimensions (known up front, without decoding the whole
// image) and a way to load the full-resolution pixels.
//
// Load is the export pipeline's suspend point; it may block on disk
// or network and may fail, in which case the export aborts with a
// diagnostic and no partial output.
type Source interface {
	Name() string
	Size() (width, height int)
	Load() (image.Image, error)
}

type memorySource struct {
	name string
	image image.Image
}

func (self *memorySource) Name() string { return self.name }

func (self *memorySource) Size() (width, height int) {
	if self.image == nil { return 0, 0 }
	bounds := self.image.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (self *memorySource) Load() (image.Image, error) {
	if self.image == nil { return nil, errors.New("no image") }
	return self.image, nil
}

// Wraps an already decoded image as a [Source]. Mostly useful for
// tests and for hosts that manage image loading themselves.
func SourceOf(img image.Image, name string) Source {
	return &memorySource{ name: name, image: img }
}

type fileSource struct {
	path string
	width int
	height int
}

func (self *fileSource) Name() string { return filepath.Base(self.path) }
func (self *fileSource) Size() (width, height int) { return self.width, self.height }

func (self *fileSource) Load() (image.Image, error) {
	file, err := os.Open(self.path)
	if err != nil { return nil, err }
	defer file.Close()
	img, _, err := image.Decode(file)
	return img, err
}

// Opens an image file as a [Source]. The file header is decoded
// immediately to learn the native dimensions; pixels are decoded
// lazily on [Source.Load](). PNG, JPEG and GIF are supported.
func OpenSourceFile(path string) (Source, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	config, _, err := image.DecodeConfig(file)
	closeErr := file.Close()
	if err != nil { return nil, err }
	if closeErr != nil { return nil, closeErr }
	return &fileSource{ path: path, width: config.Width, height: config.Height }, nil
}
