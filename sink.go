package stamp

import "os"
import "path/filepath"

// A Sink receives the encoded export artifact. It stands in for the
// browser-style download trigger of the original editor: hosts decide
// whether bytes end up in a file, an HTTP response or a download
// prompt. Implementations own any transient resources they allocate
// for delivery (temp files, object URLs) and must release them before
// returning.
type Sink interface {
	Deliver(filename string, data []byte) error
}

// Adapter to use plain functions as sinks.
type SinkFunc func(filename string, data []byte) error

func (self SinkFunc) Deliver(filename string, data []byte) error {
	return self(filename, data)
}

// A FileSink writes delivered artifacts into a directory.
type FileSink struct {
	Dir string
}

func (self FileSink) Deliver(filename string, data []byte) error {
	return os.WriteFile(filepath.Join(self.Dir, filename), data, 0666)
}
