package export

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONEnvelope wraps exported rows with generation metadata.
type JSONEnvelope struct {
	ExportDate string              `json:"exportDate"`
	Total      int                 `json:"totalApplications"`
	Rows       []map[string]string `json:"applications"`
}

// JSONExporter renders Dataset records into a pretty-printed JSON envelope.
type JSONExporter struct {
	now func() time.Time
}

// NewJSONExporter builds a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{now: time.Now}
}

// Render produces the JSON envelope for the dataset.
func (e *JSONExporter) Render(data Dataset) ([]byte, error) {
	rows := data.Rows
	if rows == nil {
		rows = []map[string]string{}
	}
	envelope := JSONEnvelope{
		ExportDate: e.now().UTC().Format(time.RFC3339),
		Total:      len(rows),
		Rows:       rows,
	}
	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json export: %w", err)
	}
	return payload, nil
}
