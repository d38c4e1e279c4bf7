package export

import (
	"fmt"

	"elbow/canvas"
	"elbow/core"
)

// ASCIIExporter exports routes to ASCII/Unicode art format
type ASCIIExporter struct {
	unit    float64
	palette *canvas.Palette
}

// NewASCIIExporter creates a new ASCII exporter drawing one character per
// unit canvas units.
func NewASCIIExporter(unit float64) *ASCIIExporter {
	return &ASCIIExporter{unit: unit}
}

// Export rasterises the route with a start marker and an arrow head
func (e *ASCIIExporter) Export(r core.Route) (string, error) {
	c, err := canvas.RenderRoute(r, e.unit)
	if err != nil {
		return "", fmt.Errorf("failed to render route: %w", err)
	}
	if e.palette != nil {
		return c.ColorString(*e.palette), nil
	}
	return c.String(), nil
}

// WithColor makes the exporter emit ANSI colored art, lines in the named
// color and markers in the default marker style.
func (e *ASCIIExporter) WithColor(color string) (*ASCIIExporter, error) {
	code := canvas.GetColorCode(color)
	if code == "" {
		return nil, fmt.Errorf("unknown color: %s", color)
	}
	e.palette = &canvas.Palette{Line: code, Marker: canvas.DefaultPalette.Marker}
	return e, nil
}

// GetFileExtension returns the recommended file extension
func (e *ASCIIExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *ASCIIExporter) GetFormatName() string {
	return "ASCII/Unicode Art"
}
