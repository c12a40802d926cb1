package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datasetsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lineage_datasets_created_total",
		Help: "Datasets registered, by data sensitivity and classification",
	}, []string{"data_sensitivity", "data_classification"})

	edgesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lineage_edges_created_total",
		Help: "Lineage edges appended, by edge kind and type",
	}, []string{"kind", "type"})

	operationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lineage_operation_errors_total",
		Help: "Rejected lineage operations, by operation and error code",
	}, []string{"operation", "code"})

	walkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lineage_walk_duration_seconds",
		Help:    "Duration of transitive lineage walks",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"direction"})

	walkSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lineage_walk_models",
		Help:    "Number of models reached by a transitive lineage walk",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)

const (
	edgeKindDatasetLink = "dataset_link"
	edgeKindDependency  = "model_dependency"
)
