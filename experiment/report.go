// SPDX-License-Identifier: MIT

package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Report is the outcome of one Run.
type Report struct {
	RunID     uuid.UUID `yaml:"run_id"`
	StartedAt time.Time `yaml:"started_at"`
	Finished  time.Time `yaml:"finished_at"`
	Config    Config    `yaml:"config"`
	Summaries []Summary `yaml:"summaries"`
	Trials    []Trial   `yaml:"trials"`
}

func newReport(cfg Config) *Report {
	return &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Config:    cfg,
	}
}

// WriteYAML encodes the full report.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("experiment: encode report: %w", err)
	}

	return enc.Close()
}

// csvHeader is the column layout of WriteCSV.
var csvHeader = []string{"run_id", "solver", "size", "trial", "seed", "cost", "ops", "seconds", "gap"}

// WriteCSV writes one row per trial, preceded by a header row.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("experiment: write csv: %w", err)
	}
	id := r.RunID.String()
	var t Trial
	for _, t = range r.Trials {
		if err := cw.Write([]string{
			id,
			t.Solver,
			strconv.Itoa(t.Size),
			strconv.Itoa(t.Trial),
			strconv.FormatInt(t.Seed, 10),
			strconv.FormatFloat(t.Cost, 'g', -1, 64),
			strconv.FormatInt(t.Ops, 10),
			strconv.FormatFloat(t.Seconds, 'g', -1, 64),
			strconv.FormatFloat(t.Gap, 'g', -1, 64),
		}); err != nil {
			return fmt.Errorf("experiment: write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("experiment: write csv: %w", err)
	}

	return nil
}
