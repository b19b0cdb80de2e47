package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Meta RunMetadata `json:"meta"`
	Rows [][]float64 `json:"rows"`
}

// ExportJSON writes a run's metadata and series as one JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	_, rows, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Meta: *meta, Rows: rows})
}

// ExportJSONFile is ExportJSON to a file path.
func (s *Store) ExportJSONFile(runID, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSON(runID, file)
}
