// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/baseline"
	"github.com/katalvlaran/lvassign/experiment"
	"github.com/katalvlaran/lvassign/hungarian"
	"github.com/katalvlaran/lvassign/matrix"
)

// Output formats accepted by solve --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// maxPairsShown caps the assignment column of the solve table.
const maxPairsShown = 12

// solveOutput is one solver's answer in machine-readable output.
type solveOutput struct {
	Solver     string                `json:"solver" yaml:"solver"`
	Cost       float64               `json:"cost" yaml:"cost"`
	Ops        int64                 `json:"ops" yaml:"ops"`
	Seconds    float64               `json:"seconds" yaml:"seconds"`
	Assignment assignment.Assignment `json:"assignment" yaml:"assignment"`
}

func (c *CLI) solveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the assignment problem for a cost matrix file",
		Long: `Solve reads an n×n cost matrix stored under the key "cost" in a .json, .yaml,
.yml or .toml file and prints the optimal assignment.

Use --solver all (or a comma-separated list) to compare algorithms on the same
matrix. The exhaustive solver is skipped above its size limit when "all" is
requested.`,
		Example: `  assignbench solve jobs.yaml
  assignbench solve jobs.json --solver hungarian,flow -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), args[0],
				splitList(c.v.GetString("solver")), c.v.GetString("output"))
		},
	}
	cmd.Flags().StringP("solver", "s", hungarian.Name, "solver name, comma-separated list, or all")
	cmd.Flags().StringP("output", "o", outputTable, "output format: table, json or yaml")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, w io.Writer, path string, names []string, output string) error {
	logger := logr.FromContextOrDiscard(ctx)
	switch output {
	case outputTable, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	m, err := readMatrixFile(path)
	if err != nil {
		return err
	}
	solvers, err := experiment.Lookup(names)
	if err != nil {
		return err
	}
	all := len(names) == 0 || containsFold(names, experiment.All)
	logger.V(1).Info("matrix loaded", "file", path, "rows", m.Rows(), "cols", m.Cols())

	results := make([]solveOutput, 0, len(solvers))
	var (
		s     experiment.Solver
		res   *assignment.Result
		start time.Time
	)
	for _, s = range solvers {
		if all && s.Name == baseline.BruteForceName && m.Rows() > baseline.MaxBruteForceN {
			logger.Info("skipping solver above its size limit", "solver", s.Name, "n", m.Rows(), "max", baseline.MaxBruteForceN)
			continue
		}
		start = time.Now()
		res, err = s.Solve(ctx, m, assignment.WithLogger(logger.WithName(s.Name)))
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		results = append(results, solveOutput{
			Solver:     res.Solver,
			Cost:       res.Cost,
			Ops:        res.Ops,
			Seconds:    time.Since(start).Seconds(),
			Assignment: res.Assignment,
		})
	}

	return writeSolve(w, output, m, results)
}

func writeSolve(w io.Writer, output string, m matrix.Matrix, results []solveOutput) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}

	rows := make([][]string, 0, len(results))
	var r solveOutput
	for _, r = range results {
		rows = append(rows, []string{
			r.Solver,
			strconv.FormatFloat(r.Cost, 'g', 10, 64),
			strconv.FormatInt(r.Ops, 10),
			formatSeconds(r.Seconds),
			formatAssignment(r.Assignment),
		})
	}
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d×%d cost matrix", m.Rows(), m.Cols())))
	fmt.Fprintln(w, renderTable([]string{"Solver", "Cost", "Ops", "Time", "Assignment"}, rows, 1, 2, 3))

	return nil
}

func formatAssignment(a assignment.Assignment) string {
	if len(a) > maxPairsShown {
		return fmt.Sprintf("%d pairs", len(a))
	}
	return fmt.Sprint(a)
}

func formatSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}

// splitList splits comma-separated values and drops empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return true
		}
	}
	return false
}
