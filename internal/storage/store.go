// Package storage persists computed results under a data directory, one
// subdirectory per run with a metadata document and the sampled fields.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/fdgrad/internal/engine"
	"github.com/san-kum/fdgrad/internal/grid"
	"github.com/san-kum/fdgrad/internal/validate"
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
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Function   string           `json:"function_expr"`
	Timestamp  time.Time        `json:"timestamp"`
	Domain     grid.Domain      `json:"domain"`
	Mesh       engine.MeshInfo  `json:"mesh"`
	Stats      engine.Stats     `json:"stats"`
	Validation *validate.Report `json:"validation,omitempty"`
	Degenerate bool             `json:"degenerate,omitempty"`
}

// FieldSet holds the reloaded arrays of a stored run.
type FieldSet struct {
	X, Y, Z, DfDx, DfDy grid.Field
}

// Save writes one run directory: metadata.json plus fields.csv with a row
// per mesh point. The label names the run (preset name or "custom").
func (s *Store) Save(label string, res *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Label:      label,
		Function:   res.Function,
		Timestamp:  time.Now(),
		Domain:     res.Domain,
		Mesh:       res.Mesh,
		Stats:      res.Stats,
		Validation: res.Validation,
		Degenerate: res.Degenerate,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "fields.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z", "df_dx", "df_dy"}); err != nil {
		return "", err
	}

	for i := 0; i < res.Mesh.Ny; i++ {
		for j := 0; j < res.Mesh.Nx; j++ {
			row := []string{
				formatValue(res.X.At(i, j)),
				formatValue(res.Y.At(i, j)),
				formatValue(res.Z.At(i, j)),
				formatValue(res.DfDx.At(i, j)),
				formatValue(res.DfDy.At(i, j)),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
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

// LoadFields reads the sampled arrays of a stored run back into fields
// shaped by the run's metadata.
func (s *Store) LoadFields(runID string) (*FieldSet, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "fields.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	ny, nx := meta.Mesh.Ny, meta.Mesh.Nx
	if len(records) != ny*nx+1 {
		return nil, fmt.Errorf("storage: run %s has %d field rows, expected %d",
			runID, len(records)-1, ny*nx)
	}

	fs := &FieldSet{
		X:    grid.NewField(ny, nx),
		Y:    grid.NewField(ny, nx),
		Z:    grid.NewField(ny, nx),
		DfDx: grid.NewField(ny, nx),
		DfDy: grid.NewField(ny, nx),
	}
	fields := []*grid.Field{&fs.X, &fs.Y, &fs.Z, &fs.DfDx, &fs.DfDy}

	for k, record := range records[1:] {
		if len(record) != len(fields) {
			return nil, fmt.Errorf("storage: run %s row %d has %d columns", runID, k+1, len(record))
		}
		for c, f := range fields {
			v, err := strconv.ParseFloat(record[c], 64)
			if err != nil {
				return nil, fmt.Errorf("storage: run %s row %d: %w", runID, k+1, err)
			}
			f.Data[k] = v
		}
	}

	return fs, nil
}
