package export

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"elbow/core"
)

const (
	svgPadding = 20.0

	svgTag = "<svg width=\"%s\" height=\"%s\" viewBox=\"%s %s %s %s\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n"

	markerDef = `  <defs>
    <marker id="Pointer"
      viewBox="0 0 10 10" refX="9" refY="5"
      markerUnits="strokeWidth"
      markerWidth="4" markerHeight="4"
      orient="auto">
      <path d="M 0 0 L 10 5 L 0 10 z" />
    </marker>
  </defs>
`
	pathTag = "  <path id=\"connector\" marker-end=\"url(#Pointer)\" stroke=\"#000\" stroke-width=\"%s\" fill=\"none\" d=\"%s\" />\n"
)

// SVGExporter exports routes as an SVG document
type SVGExporter struct {
	strokeWidth float64
}

// NewSVGExporter creates a new SVG exporter
func NewSVGExporter(strokeWidth float64) *SVGExporter {
	if strokeWidth <= 0 {
		strokeWidth = DefaultOptions.StrokeWidth
	}
	return &SVGExporter{strokeWidth: strokeWidth}
}

// Export writes an SVG document whose view box fits the route plus padding.
func (e *SVGExporter) Export(r core.Route) (string, error) {
	poly := r.Polyline()

	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	width := maxX - minX + 2*svgPadding
	height := maxY - minY + 2*svgPadding

	// Writing the markup by hand keeps the output free of an XML prolog.
	b := &bytes.Buffer{}
	_, _ = fmt.Fprintf(b, svgTag, formatFloat(width), formatFloat(height),
		formatFloat(minX-svgPadding), formatFloat(minY-svgPadding), formatFloat(width), formatFloat(height))
	_, _ = io.WriteString(b, markerDef)
	_, _ = fmt.Fprintf(b, pathTag, formatFloat(e.strokeWidth), PathData(poly))
	_, _ = io.WriteString(b, "</svg>\n")

	return b.String(), nil
}

// PathData returns the SVG path commands for a polyline: M to the first
// point, then L to each following point.
func PathData(points []core.Point) string {
	b := &bytes.Buffer{}
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(b, "%s %s %s", cmd, formatFloat(p.X), formatFloat(p.Y))
	}
	return b.String()
}

// GetFileExtension returns the file extension
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}
