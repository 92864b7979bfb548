package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/experiment"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

// significantImprovement is the gain above which the comparison line is highlighted
const significantImprovement = 5.0

type palette struct {
	title   lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newPalette(w io.Writer, color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{title: plain, info: plain, success: plain, failure: plain}
	}
	r := lipgloss.NewRenderer(w)
	return palette{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		info:    r.NewStyle().Foreground(lipgloss.Color("#6EC4F4")),
		success: r.NewStyle().Foreground(lipgloss.Color("#6EF4A1")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#F45E6E")),
	}
}

// WriteText writes the human readable report: one line per run and a
// summary block per algorithm, followed by the comparison.
func WriteText(w io.Writer, r *Report, color bool) error {
	p := newPalette(w, color)
	var b strings.Builder

	b.WriteString(p.title.Render(fmt.Sprintf("Experiment %s", r.ExperimentID)))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Instance: %s, %d items, capacity %d, total weight %d\n",
		r.Instance.Source, r.Instance.Items, r.Instance.Capacity, r.Instance.TotalWeight)
	fmt.Fprintf(&b, "Settings: %d iterations, %d runs, seed %d, parallelism %d\n",
		r.Settings.Iterations, r.Settings.Runs, r.Settings.Seed, r.Settings.Parallelism)
	if r.System != nil {
		fmt.Fprintf(&b, "Host: %s %s, %s (%d cores), %d GB, %s\n",
			r.System.Platform, r.System.KernelArch, r.System.CPUModel, r.System.CPUCores, r.System.MemoryGB(), r.System.GoVersion)
	}
	b.WriteByte('\n')

	for i, name := range r.Results.Algorithms {
		var summary *models.AlgorithmSummary
		if i < len(r.Summaries) && r.Summaries[i].Algorithm == name {
			summary = &r.Summaries[i]
		}
		writeAlgorithm(&b, p, name, r.Results.Get(name), summary)
	}

	if r.Comparison != nil {
		b.WriteString(comparisonLine(p, r.Comparison))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Completed runs: %d, failed runs: %d, total time: %s\n",
		r.CompletedRuns, r.FailedRuns, utils.FormatDuration(r.Duration))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeAlgorithm(b *strings.Builder, p palette, name string, runs []models.RunResult, s *models.AlgorithmSummary) {
	b.WriteString(p.title.Render(name + " Results:"))
	b.WriteByte('\n')

	for _, run := range runs {
		if run.Failed() {
			b.WriteString(p.failure.Render(fmt.Sprintf("Run %d: failed: %s, time=%s",
				run.Run, run.Error, utils.FormatSeconds(run.Elapsed))))
			b.WriteByte('\n')
			continue
		}
		fmt.Fprintf(b, "Run %d: best solution=%s, value=%d, time=%s\n",
			run.Run, run.Solution, run.Fitness, utils.FormatSeconds(run.Elapsed))
	}

	if s == nil {
		b.WriteByte('\n')
		return
	}

	b.WriteString(p.success.Render(fmt.Sprintf("Best value: %d", s.BestFitness)))
	b.WriteByte('\n')
	if s.BestSolution != nil {
		fmt.Fprintf(b, "Best items: %v\n", s.BestSolution.Selected())
	}
	fmt.Fprintf(b, "Average value: %.2f\n", s.MeanFitness)
	fmt.Fprintf(b, "Average execution time: %s\n", utils.FormatSeconds(s.MeanElapsed))
	fmt.Fprintf(b, "Worst value: %d, std dev: %.2f\n", s.WorstFitness, s.StdDevFitness)
	if s.FailedRuns > 0 {
		b.WriteString(p.failure.Render(fmt.Sprintf("Failed runs: %d", s.FailedRuns)))
		b.WriteByte('\n')
	}
	if line := countersLine(s.Counters); line != "" {
		b.WriteString(p.info.Render(line))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// countersLine lists the mean of every recorded counter in name order
func countersLine(counters map[string]*models.Aggregation) string {
	if len(counters) == 0 {
		return ""
	}
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%.2f", name, counters[name].Mean))
	}
	return "Mean counters: " + strings.Join(parts, ", ")
}

func comparisonLine(p palette, cmp *experiment.Comparison) string {
	if cmp.Winner == experiment.Tie {
		return p.info.Render("Comparison: tie on mean fitness")
	}
	line := fmt.Sprintf("Comparison: %s beats %s by %.2f mean fitness (%.2f%%)",
		cmp.Winner, cmp.RunnerUp, cmp.MeanFitnessGap, cmp.ImprovementPercent)
	if experiment.IsSignificantImprovement(cmp, significantImprovement) {
		return p.success.Render(line)
	}
	return p.info.Render(line)
}
