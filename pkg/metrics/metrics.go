// Package metrics exports per-generation run statistics as Prometheus
// collectors on a private registry.
package metrics

import (
	"io"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/mihai-snyk/moea/pkg/algorithms"
)

const (
	namespace = "moea"
	subsystem = "run"
)

// Recorder is an algorithms.Observer. Every series carries the algorithm
// and problem labels.
type Recorder struct {
	registry *prometheus.Registry

	// GenerationsTotal counts completed generations.
	GenerationsTotal *prometheus.CounterVec
	// EvaluationsTotal counts objective evaluations.
	EvaluationsTotal *prometheus.CounterVec
	// FirstFrontSize is the number of rank 0 members after the last generation.
	FirstFrontSize *prometheus.GaugeVec
	// ArchiveSize is the archive population after the last generation.
	ArchiveSize *prometheus.GaugeVec
	// FeasibleMembers counts population members violating no constraint.
	FeasibleMembers *prometheus.GaugeVec
	// GenerationDuration measures the wall time of one generation.
	GenerationDuration *prometheus.HistogramVec

	mu              sync.Mutex
	lastEvaluations map[[2]string]int
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	labels := []string{"algorithm", "problem"}

	return &Recorder{
		registry: reg,
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "generations_total",
			Help:      "Completed generations",
		}, labels),
		EvaluationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluations_total",
			Help:      "Objective function evaluations",
		}, labels),
		FirstFrontSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "first_front_size",
			Help:      "Non-dominated members of the current population",
		}, labels),
		ArchiveSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "archive_size",
			Help:      "Members of the external archive",
		}, labels),
		FeasibleMembers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "feasible_members",
			Help:      "Population members that satisfy every constraint",
		}, labels),
		GenerationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of one generation",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, labels),
		lastEvaluations: make(map[[2]string]int),
	}
}

func (r *Recorder) ObserveGeneration(stats algorithms.GenerationStats) {
	lv := []string{stats.Algorithm, stats.Problem}
	key := [2]string{stats.Algorithm, stats.Problem}

	r.mu.Lock()
	delta := stats.Evaluations - r.lastEvaluations[key]
	r.lastEvaluations[key] = stats.Evaluations
	r.mu.Unlock()

	r.GenerationsTotal.WithLabelValues(lv...).Inc()
	if delta > 0 {
		r.EvaluationsTotal.WithLabelValues(lv...).Add(float64(delta))
	}
	r.FirstFrontSize.WithLabelValues(lv...).Set(float64(stats.FirstFrontSize))
	r.ArchiveSize.WithLabelValues(lv...).Set(float64(stats.ArchiveSize))
	r.FeasibleMembers.WithLabelValues(lv...).Set(float64(stats.Feasible))
	r.GenerationDuration.WithLabelValues(lv...).Observe(stats.Duration.Seconds())
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every collected family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextFile writes the text format to path, as read by the node
// exporter textfile collector.
func (r *Recorder) WriteTextFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
