package export

import (
	"strconv"
	"strings"

	"elbow/core"
)

// PointsExporter prints the polyline one point per line.
type PointsExporter struct{}

// NewPointsExporter creates a new points exporter
func NewPointsExporter() *PointsExporter {
	return &PointsExporter{}
}

// Export writes start, intermediates and end as "x,y" lines.
func (e *PointsExporter) Export(r core.Route) (string, error) {
	var sb strings.Builder
	for _, p := range r.Polyline() {
		sb.WriteString(formatFloat(p.X))
		sb.WriteByte(',')
		sb.WriteString(formatFloat(p.Y))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// GetFileExtension returns the file extension
func (e *PointsExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *PointsExporter) GetFormatName() string {
	return "Point list"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
