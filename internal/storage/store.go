package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/chaosgen/internal/logistic"
	"github.com/san-kum/chaosgen/internal/ode"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	System    string             `json:"system"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Samples   int                `json:"samples"`
	Attempts  int                `json:"attempts,omitempty"`
	Params    map[string]float64 `json:"params"`
	Columns   []string           `json:"columns"`
}

// SaveLogistic persists a coupled logistic map result as metadata.json
// plus a two-column series.csv.
func (s *Store) SaveLogistic(res *logistic.Result) (string, error) {
	meta := RunMetadata{
		ID:        fmt.Sprintf("logistic_%d", time.Now().UnixNano()),
		System:    "logistic",
		Timestamp: res.GeneratedAt,
		Seed:      res.Config.Seed,
		Samples:   len(res.X),
		Attempts:  res.Attempts,
		Params: map[string]float64{
			"mu_x":     res.Params.MuX,
			"mu_y":     res.Params.MuY,
			"alpha_xy": res.Params.AlphaXY,
			"alpha_yx": res.Params.AlphaYX,
			"x0":       res.Params.X0,
			"y0":       res.Params.Y0,
		},
		Columns: []string{"x", "y"},
	}

	rows := make([][]float64, len(res.X))
	for i := range res.X {
		rows[i] = []float64{res.X[i], res.Y[i]}
	}

	return meta.ID, s.write(meta, rows)
}

// SaveSolution persists an ODE trajectory with one column per state
// dimension plus the sample time.
func (s *Store) SaveSolution(system string, params []float64, seed int64, sol *ode.Solution) (string, error) {
	paramMap := make(map[string]float64, len(params))
	for i, v := range params {
		paramMap[fmt.Sprintf("p%d", i)] = v
	}

	columns := []string{"time"}
	if len(sol.States) > 0 {
		for i := range sol.States[0] {
			columns = append(columns, fmt.Sprintf("x%d", i))
		}
	}

	meta := RunMetadata{
		ID:        fmt.Sprintf("%s_%d", system, time.Now().UnixNano()),
		System:    system,
		Timestamp: time.Now(),
		Seed:      seed,
		Samples:   len(sol.States),
		Params:    paramMap,
		Columns:   columns,
	}

	rows := make([][]float64, len(sol.States))
	for i, st := range sol.States {
		row := make([]float64, 0, len(st)+1)
		row = append(row, sol.Times[i])
		row = append(row, st...)
		rows[i] = row
	}

	return meta.ID, s.write(meta, rows)
}

func (s *Store) write(meta RunMetadata, rows [][]float64) error {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(meta.Columns); err != nil {
		return err
	}
	record := make([]string, 0, len(meta.Columns))
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', 17, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads series.csv back as a column header plus data rows.
func (s *Store) LoadSeries(runID string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("run %s has an empty series file", runID)
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("run %s: bad value %q: %w", runID, field, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
