// Package batch solves a list of equations read from a YAML file and
// produces a YAML report.
package batch

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/snishiyama/polysolve/internal/equation"
)

// Job is one equation to solve.
type Job struct {
	Name     string `yaml:"name"`
	Equation string `yaml:"equation"`
}

// RootReport is the YAML shape of one root. Value is set for real roots,
// Re/Im for complex ones.
type RootReport struct {
	Value *float64 `yaml:"value,omitempty"`
	Re    *float64 `yaml:"re,omitempty"`
	Im    *float64 `yaml:"im,omitempty"`
}

// JobResult is the report entry for one job. Error is set instead of the
// solution fields when the equation could not be parsed.
type JobResult struct {
	Name         string       `yaml:"name,omitempty"`
	Equation     string       `yaml:"equation"`
	ReducedForm  string       `yaml:"reduced_form,omitempty"`
	Degree       int          `yaml:"degree"`
	Kind         string       `yaml:"kind,omitempty"`
	Discriminant *float64     `yaml:"discriminant,omitempty"`
	Roots        []RootReport `yaml:"roots,omitempty"`
	Error        string       `yaml:"error,omitempty"`
}

// ReadJobs loads the job list from a YAML file.
func ReadJobs(path string) ([]Job, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open() > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var jobs []Job
	if err := yaml.NewDecoder(file).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("decode jobs from %s: %w", path, err)
	}
	return jobs, nil
}

// Run solves every job in order. A job that fails to parse is reported in
// place; it never aborts the batch.
func Run(jobs []Job) []JobResult {
	results := make([]JobResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, runJob(job))
	}
	return results
}

func runJob(job Job) JobResult {
	result, err := equation.SolveString(job.Equation)
	if err != nil {
		slog.Debug("batch job failed", slog.String("name", job.Name), slog.String("error", err.Error()))
		return JobResult{Name: job.Name, Equation: job.Equation, Error: err.Error()}
	}

	s := result.Solution
	report := JobResult{
		Name:         job.Name,
		Equation:     job.Equation,
		ReducedForm:  result.ReducedForm,
		Degree:       s.Degree,
		Kind:         s.Kind.String(),
		Discriminant: s.Discriminant,
	}
	for _, root := range s.Roots {
		report.Roots = append(report.Roots, newRootReport(root))
	}
	return report
}

func newRootReport(root equation.Root) RootReport {
	if root.Kind == equation.RootComplex {
		re, im := root.Re, root.Im
		return RootReport{Re: &re, Im: &im}
	}
	value := root.Value
	return RootReport{Value: &value}
}
