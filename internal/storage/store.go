package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/quadviz/internal/anim"
)

// Sample is one vehicle's state after a tick.
type Sample struct {
	Frame    int
	Vehicle  int
	X, Y     float64
	Heading  float64
	TraceLen int
}

// Recording is a headless run of a driver.
type Recording struct {
	Frames   int
	Labels   []string
	Trims    int
	Samples  []Sample
	Interval time.Duration
}

// Record ticks d for frames ticks starting at frame 0. Vehicles still in
// warmup produce no samples.
func Record(d *anim.Driver, frames int) *Recording {
	vehicles := d.Vehicles()
	rec := &Recording{Frames: frames, Interval: d.Interval()}
	for _, v := range vehicles {
		rec.Labels = append(rec.Labels, v.Label())
	}

	d.Initialize()
	for i := 0; i < frames; i++ {
		d.OnTick(i)
		for j, v := range vehicles {
			p := v.Position()
			if p == nil {
				continue
			}
			rec.Samples = append(rec.Samples, Sample{
				Frame:    i,
				Vehicle:  j,
				X:        p.X,
				Y:        p.Y,
				Heading:  p.Heading,
				TraceLen: d.TraceLen(),
			})
		}
	}
	rec.Trims = d.Trims()
	return rec
}

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
	ID         string    `json:"id"`
	Scenario   string    `json:"scenario"`
	Timestamp  time.Time `json:"timestamp"`
	Frames     int       `json:"frames"`
	IntervalMs int64     `json:"interval_ms"`
	Vehicles   []string  `json:"vehicles"`
	Samples    int       `json:"samples"`
	Trims      int       `json:"trims"`
}

var header = []string{"frame", "vehicle", "x", "y", "heading", "trace_len"}

// Save writes metadata.json and samples.csv under a new run directory and
// returns the run id.
func (s *Store) Save(scenario string, rec *Recording) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", scenario, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario,
		Timestamp:  now,
		Frames:     rec.Frames,
		IntervalMs: rec.Interval.Milliseconds(),
		Vehicles:   rec.Labels,
		Samples:    len(rec.Samples),
		Trims:      rec.Trims,
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

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, sm := range rec.Samples {
		row := []string{
			strconv.Itoa(sm.Frame),
			strconv.Itoa(sm.Vehicle),
			strconv.FormatFloat(sm.X, 'g', -1, 64),
			strconv.FormatFloat(sm.Y, 'g', -1, 64),
			strconv.FormatFloat(sm.Heading, 'g', -1, 64),
			strconv.Itoa(sm.TraceLen),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
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

// LoadSamples reads samples.csv back. Malformed rows are skipped.
func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(records))
	for i := 1; i < len(records); i++ {
		sm, ok := parseSample(records[i])
		if !ok {
			continue
		}
		samples = append(samples, sm)
	}

	return samples, nil
}

func parseSample(record []string) (Sample, bool) {
	if len(record) != len(header) {
		return Sample{}, false
	}
	var (
		sm   Sample
		errs [6]error
	)
	sm.Frame, errs[0] = strconv.Atoi(record[0])
	sm.Vehicle, errs[1] = strconv.Atoi(record[1])
	sm.X, errs[2] = strconv.ParseFloat(record[2], 64)
	sm.Y, errs[3] = strconv.ParseFloat(record[3], 64)
	sm.Heading, errs[4] = strconv.ParseFloat(record[4], 64)
	sm.TraceLen, errs[5] = strconv.Atoi(record[5])
	for _, err := range errs {
		if err != nil {
			return Sample{}, false
		}
	}
	return sm, true
}
