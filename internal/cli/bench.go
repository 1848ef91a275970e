// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvassign/experiment"
)

// benchOutputs are the optional files a bench run writes.
type benchOutputs struct {
	report  string
	csv     string
	metrics string
}

func (c *CLI) benchCommand() *cobra.Command {
	def := experiment.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run solvers on generated instances and compare them",
		Long: `Bench generates seeded random cost matrices for every size and trial, runs
each selected solver on the same matrices, cross-checks the exact solvers and
prints mean time, operation count, cost and gap to the optimum per size.`,
		Example: `  assignbench bench --sizes 8,16,32 --trials 10
  assignbench bench --kind integer --max-value 3 --report run.yaml --csv run.csv
  ASSIGNBENCH_WORKERS=1 assignbench bench --metrics-file assign.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := benchConfig(c.v)
			if err != nil {
				return err
			}
			out := benchOutputs{
				report:  c.v.GetString("report"),
				csv:     c.v.GetString("csv"),
				metrics: c.v.GetString("metrics-file"),
			}
			return c.runBench(cmd.Context(), cmd.OutOrStdout(), cfg, out)
		},
	}

	f := cmd.Flags()
	f.IntSlice("sizes", def.Sizes, "matrix orders to run")
	f.Int("trials", def.Trials, "instances per size")
	f.Int64("seed", def.Seed, "root seed of the instance generator")
	f.String("solvers", strings.Join(def.Solvers, ","), "comma-separated solver names, or all")
	f.Int("workers", def.Workers, "instances solved concurrently")
	f.Float64("tolerance", def.Tolerance, "relative cost difference allowed between exact solvers")
	f.String("kind", string(def.Kind), "entry distribution: uniform or integer")
	f.Int("max-value", def.MaxValue, "largest entry for --kind integer")
	f.String("report", "", "write the full report as YAML to this file")
	f.String("csv", "", "write one CSV row per trial to this file")
	f.String("metrics-file", "", "write Prometheus text-format metrics to this file")

	return cmd
}

// benchConfig assembles an experiment.Config from flags, environment and
// config file, in viper precedence order.
func benchConfig(v *viper.Viper) (experiment.Config, error) {
	sizes, err := intList(v, "sizes")
	if err != nil {
		return experiment.Config{}, err
	}
	cfg := experiment.Config{
		Sizes:     sizes,
		Trials:    v.GetInt("trials"),
		Seed:      v.GetInt64("seed"),
		Solvers:   stringList(v, "solvers"),
		Workers:   v.GetInt("workers"),
		Tolerance: v.GetFloat64("tolerance"),
		Kind:      experiment.InstanceKind(v.GetString("kind")),
		MaxValue:  v.GetInt("max-value"),
	}

	return cfg, cfg.Validate()
}

func (c *CLI) runBench(ctx context.Context, w io.Writer, cfg experiment.Config, out benchOutputs) error {
	logger := logr.FromContextOrDiscard(ctx)
	metrics := experiment.NewMetrics()
	prog := newProgress(logger)

	rep, err := experiment.Run(ctx, cfg, nil, experiment.WithLogger(logger), experiment.WithMetrics(metrics))
	if err != nil {
		return err
	}
	prog.done("bench complete", "trials", len(rep.Trials))

	fmt.Fprintln(w, StyleTitle.Render("run "+rep.RunID.String()))
	fmt.Fprintln(w, renderTable(
		[]string{"Size", "Solver", "Trials", "Mean time", "Std time", "Mean ops", "Mean cost", "Mean gap"},
		summaryRows(rep.Summaries),
		0, 2, 3, 4, 5, 6, 7,
	))

	if out.report != "" {
		if err = writeFile(out.report, rep.WriteYAML); err != nil {
			return err
		}
		printSuccess(w, "report written to %s", out.report)
	}
	if out.csv != "" {
		if err = writeFile(out.csv, rep.WriteCSV); err != nil {
			return err
		}
		printSuccess(w, "trials written to %s", out.csv)
	}
	if out.metrics != "" {
		if err = metrics.WriteTextfile(out.metrics); err != nil {
			return err
		}
		printSuccess(w, "metrics written to %s", out.metrics)
	}

	return nil
}

func summaryRows(sums []experiment.Summary) [][]string {
	rows := make([][]string, 0, len(sums))
	var s experiment.Summary
	for _, s = range sums {
		rows = append(rows, []string{
			strconv.Itoa(s.Size),
			s.Solver,
			strconv.Itoa(s.Trials),
			formatSeconds(s.MeanSeconds),
			formatSeconds(s.StdSeconds),
			strconv.FormatFloat(s.MeanOps, 'f', 0, 64),
			strconv.FormatFloat(s.MeanCost, 'f', 4, 64),
			strconv.FormatFloat(s.MeanGap, 'f', 4, 64),
		})
	}

	return rows
}

// writeFile creates path and hands it to write, reporting close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}

// intList reads key as a list of ints. Environment variables arrive as a
// single comma-separated string.
func intList(v *viper.Viper, key string) ([]int, error) {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetIntSlice(key), nil
	}
	parts := splitList(strings.Trim(raw, "[]"))
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// stringList reads key as a list of strings, accepting comma-separated input.
func stringList(v *viper.Viper, key string) []string {
	if raw, ok := v.Get(key).(string); ok {
		return splitList(raw)
	}
	var out []string
	for _, s := range v.GetStringSlice(key) {
		out = append(out, splitList(s)...)
	}

	return out
}
