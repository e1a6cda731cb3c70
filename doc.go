// stamp is a package for overlaying positioned, styled text on a base
// image and exporting the composite as a PNG at the source image's
// native resolution.
//
// The editing model works in *display space*: the pixel coordinate
// system of the (possibly scaled-down) image viewport shown in the
// editing UI. A [Viewport] tracks the live size of that viewport, a
// [Canvas] holds the ordered collection of [Element] values placed on
// it, and a [Session] turns pointer events into selection and drag
// transitions on the canvas. At export time an [Exporter] re-projects
// the display-space model into the source image's native pixel space
// and rasterizes everything into a single bitmap.
//
// Basic usage looks like this:
//
//	viewport := stamp.NewViewport(800, 450)
//	canvas := stamp.NewCanvas(nil)
//	session := stamp.NewSession(canvas, viewport)
//	id := session.Add()
//	canvas.Update(id, stamp.Patch{}.WithContent("Hello!"))
//
//	exporter := stamp.NewExporter(raster.SoftProvider(font.DefaultLibrary()))
//	exporter.Export(canvas, viewport, source, sink)
//
// Text rendering is delegated to the [raster.Surface] capability, so
// the whole export pipeline can run headless or be backed by a custom
// rasterizer. Fonts are resolved through a [font.Library] by family
// name and numeric weight.
package stamp
