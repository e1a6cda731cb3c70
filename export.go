package stamp

import "log"
import "bytes"
import "errors"
import "strings"
import "path/filepath"

import "github.com/lunavik/stamp/raster"

// An Exporter re-projects the display-space element model into the
// source image's native pixel space and rasterizes everything into a
// single PNG at native resolution.
//
// Scaling works from the ratio between native and display dimensions:
// scaleX = nativeWidth/viewportWidth, scaleY = nativeHeight/viewportHeight.
// Anchors map to (x*scaleX, y*scaleY). Font size (and letter spacing)
// scale by scaleX only, even when scaleX != scaleY: that reproduces
// the display behavior the editor has always had, anisotropic stretch
// included, rather than silently changing it.
//
// Export failures never reach the caller: the operation aborts with a
// diagnostic log and no partial output.
type Exporter struct {
	provider raster.Provider
	logger *log.Logger
}

// Creates an [Exporter] acquiring surfaces from the given provider,
// e.g. [raster.SoftProvider]().
func NewExporter(provider raster.Provider) *Exporter {
	return &Exporter{ provider: provider }
}

// Redirects the exporter's diagnostics. Defaults to [log.Default]().
func (self *Exporter) SetLogger(logger *log.Logger) { self.logger = logger }

// Exports the canvas's current elements composited over the source
// image, delivering the encoded PNG to the sink under a filename
// derived from the source's name ("photo.jpg" becomes "photo.png";
// unnamed sources become "export.png").
//
// The model and viewport are snapshotted synchronously, then the
// export (image load, rasterization, encoding, delivery) runs on its
// own goroutine, fire-and-forget: later model mutations don't affect
// an in-flight export, there is no cancellation, and failures only
// surface as diagnostic logs.
func (self *Exporter) Export(canvas *Canvas, viewport *Viewport, source Source, sink Sink) {
	elements := canvas.Elements()
	viewportWidth, viewportHeight := viewport.Size()
	go self.export(elements, viewportWidth, viewportHeight, source, sink)
}

func (self *Exporter) export(elements []Element, viewportWidth, viewportHeight float64, source Source, sink Sink) {
	surface, err := self.compose(elements, viewportWidth, viewportHeight, source)
	if err != nil {
		self.logf("stamp: export aborted: %s", err.Error())
		return
	}

	var buffer bytes.Buffer
	err = surface.Encode(&buffer)
	if err != nil {
		self.logf("stamp: export encoding failed: %s", err.Error())
		return
	}
	err = sink.Deliver(ExportFilename(source.Name()), buffer.Bytes())
	if err != nil {
		self.logf("stamp: export delivery failed: %s", err.Error())
	}
}

// Rasterizes the given elements over the source image into a freshly
// acquired surface at the source's native resolution. This is the
// synchronous core of [Exporter.Export]().
func (self *Exporter) compose(elements []Element, viewportWidth, viewportHeight float64, source Source) (raster.Surface, error) {
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return nil, errors.New("degenerate viewport")
	}

	// surface acquisition comes before the load so a missing
	// rasterizer aborts without touching the source at all
	nativeWidth, nativeHeight := source.Size()
	surface, err := self.provider(nativeWidth, nativeHeight)
	if err != nil { return nil, err }

	img, err := source.Load()
	if err != nil { return nil, err }
	surface.Fill(img)

	scaleX := float64(nativeWidth)/viewportWidth
	scaleY := float64(nativeHeight)/viewportHeight
	for _, element := range elements { // insertion order: later elements on top
		surface.Text(element.Content, raster.TextStyle {
			X: element.X*scaleX,
			Y: element.Y*scaleY,
			Size: element.FontSize*scaleX,
			Family: element.FontFamily,
			Weight: element.FontWeight,
			Color: element.Color,
			Rotation: element.Rotation,
			Align: rasterAlign(element.TextAlign),
			LetterSpacing: element.LetterSpacing*scaleX,
			LineHeight: element.LineHeight,
		})
	}
	return surface, nil
}

func (self *Exporter) logf(format string, args ...any) {
	logger := self.logger
	if logger == nil { logger = log.Default() }
	logger.Printf(format, args...)
}

func rasterAlign(align Align) raster.Align {
	switch align {
	case Center: return raster.Center
	case Right: return raster.Right
	default:
		return raster.Left
	}
}

// Derives the export artifact's filename from the source image's
// name: the extension is replaced with ".png", and unnamed sources
// become "export.png".
func ExportFilename(sourceName string) string {
	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	if base == "" { base = "export" }
	return base + ".png"
}
