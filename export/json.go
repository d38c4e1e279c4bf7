package export

import (
	"encoding/json"

	"elbow/core"
)

// JSONExporter exports routes to JSON format
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a route to JSON. Points is always an array, never null.
func (e *JSONExporter) Export(r core.Route) (string, error) {
	if r.Points == nil {
		r.Points = []core.Point{}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
