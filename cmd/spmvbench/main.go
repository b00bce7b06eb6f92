// SPDX-License-Identifier: MIT

// Command spmvbench runs one SpMV benchmark over a coordinate triplet file
// and prints a structured JSON report on stdout.
//
// The report is emitted on every path — a fatal error still produces a
// (possibly mostly empty) document with the failure recorded in its errors
// list, alongside a nonzero exit status.
//
// Usage:
//
//	spmvbench matrix.mtx [-T threads] [-S static|dynamic|guided] [-C chunk] [-I iterations]
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/katalvlaran/spmvbench/bench"
	"github.com/katalvlaran/spmvbench/sched"
)

// reporter guarantees exactly one JSON document on stdout per process,
// whatever path the run takes. It is registered as an exit handler so even
// an early atexit.Exit still flushes structured output.
type reporter struct {
	report  *bench.Report
	emitted bool
}

func (r *reporter) flush() {
	if r.emitted {
		return
	}
	r.emitted = true

	if r.report == nil {
		r.report = &bench.Report{Errors: []string{}}
	}
	raw, err := r.report.JSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spmvbench: cannot render report: %v\n", err)
		return
	}
	fmt.Println(string(raw))
}

func main() {
	rep := &reporter{}
	atexit.Register(rep.flush)

	if err := newRootCommand(rep).Execute(); err != nil {
		if rep.report == nil {
			rep.report = &bench.Report{Errors: []string{err.Error()}}
		}
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// newRootCommand wires the CLI surface to bench.Run.
func newRootCommand(rep *reporter) *cobra.Command {
	var (
		threads    int
		schedule   string
		chunkSize  int
		iterations int
		warmupCap  int
		seed       int64
		sequential bool
		summary    bool
	)

	cmd := &cobra.Command{
		Use:           "spmvbench <matrix.mtx>",
		Short:         "Benchmark sparse matrix-vector multiplication over a triplet file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			policy, err := sched.ParsePolicy(schedule)
			if err != nil {
				rep.report = &bench.Report{Errors: []string{err.Error()}}
				return err
			}

			report, runErr := bench.Run(bench.Config{
				MatrixPath: args[0],
				Threads:    threads,
				Policy:     policy,
				ChunkSize:  chunkSize,
				Iterations: iterations,
				WarmupCap:  warmupCap,
				Seed:       seed,
				Sequential: sequential,
			})
			rep.report = report
			rep.flush()

			if summary {
				printSummary(report)
			}

			return runErr
		},
	}

	cmd.Flags().IntVarP(&threads, "threads", "T", 0, "worker threads (0 = OMP_NUM_THREADS or all processors)")
	cmd.Flags().StringVarP(&schedule, "schedule", "S", "static", "partitioning policy: static, dynamic, or guided")
	cmd.Flags().IntVarP(&chunkSize, "chunk", "C", 0, "rows per scheduling step (0 = policy default)")
	cmd.Flags().IntVarP(&iterations, "iterations", "I", bench.DefaultIterations, "timed kernel passes")
	cmd.Flags().IntVar(&warmupCap, "warmup-cap", 0, "adaptive warm-up iteration cap (0 = hard cap)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "input vector seed (0 = clock-derived)")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "run the single-threaded kernel, omit the scenario block")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a colorized digest on stderr")

	return cmd
}

// printSummary renders a short human digest on stderr; stdout stays
// reserved for the machine-readable report.
func printSummary(r *bench.Report) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(os.Stderr, "%s  %d×%d  nnz=%d\n",
		bold(r.Matrix.Name), r.Matrix.Rows, r.Matrix.Cols, r.Matrix.NNZ)
	if r.Scenario != nil {
		fmt.Fprintf(os.Stderr, "scenario: %s threads=%d chunk=%d\n",
			cyan(r.Scenario.SchedulingType), r.Scenario.Threads, r.Scenario.ChunkSize)
	}
	if s := r.Statistics90; s != nil {
		fmt.Fprintf(os.Stderr, "p90 %s ms  %s GFLOP/s  %s GB/s  intensity %.4f\n",
			green(fmt.Sprintf("%.4f", s.DurationMs)),
			green(fmt.Sprintf("%.3f", s.GFlops)),
			green(fmt.Sprintf("%.3f", s.BandwidthGBps)),
			s.ArithmeticIntensity)
	}
	fmt.Fprintf(os.Stderr, "warm-up: %d iterations, %.3f ms\n", r.WarmupIterations, r.WarmupTimeMs)
	for _, msg := range r.Errors {
		fmt.Fprintf(os.Stderr, "%s %s\n", red("!"), msg)
	}
}
