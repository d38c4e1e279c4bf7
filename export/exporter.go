// Package export renders routed connectors to text-based formats
package export

import (
	"fmt"

	"elbow/core"
)

// Format represents an export format
type Format string

const (
	// FormatPoints prints one x,y pair per line
	FormatPoints Format = "points"
	// FormatJSON exports the route as JSON
	FormatJSON Format = "json"
	// FormatSVG exports an SVG document with the connector as a path
	FormatSVG Format = "svg"
	// FormatASCII exports to ASCII/Unicode art
	FormatASCII Format = "ascii"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a route to the target format
	Export(r core.Route) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// Options tune exporters that draw the route.
type Options struct {
	// Unit is canvas units per character cell for ASCII output.
	Unit float64
	// StrokeWidth is the SVG line width.
	StrokeWidth float64
	// Color names the ANSI color of ASCII lines. Empty means plain text.
	Color string
}

// DefaultOptions draws one character per 10 canvas units.
var DefaultOptions = Options{Unit: 10, StrokeWidth: 2}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format, opts Options) (Exporter, error) {
	switch format {
	case FormatPoints:
		return NewPointsExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatSVG:
		return NewSVGExporter(opts.StrokeWidth), nil
	case FormatASCII:
		e := NewASCIIExporter(opts.Unit)
		if opts.Color == "" {
			return e, nil
		}
		return e.WithColor(opts.Color)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "points", "pts", "":
		return FormatPoints, nil
	case "json":
		return FormatJSON, nil
	case "svg":
		return FormatSVG, nil
	case "ascii", "text", "txt":
		return FormatASCII, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatPoints,
		FormatJSON,
		FormatSVG,
		FormatASCII,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatPoints: "One x,y pair per line, start to end",
		FormatJSON:   "JSON object with start, end and intermediate points",
		FormatSVG:    "SVG document with the connector as an arrowed path",
		FormatASCII:  "ASCII/Unicode art",
	}
}
