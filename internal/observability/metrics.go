// Package observability holds the Prometheus metrics collector shared by the
// service, the store, and the view builders.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds all Prometheus metrics for the engine. Each collector owns
// its own registry so independent instances never collide on registration.
type Collector struct {
	registry *prometheus.Registry

	// Mutation metrics
	ArtifactsCreated     prometheus.Counter
	ArtifactsDeleted     prometheus.Counter
	RelationshipsCreated prometheus.Counter
	RelationshipsDeleted prometheus.Counter
	CollectionsCreated   prometheus.Counter

	// CascadedRelationshipDeletes counts relationships removed because their
	// artifact endpoint was deleted
	CascadedRelationshipDeletes prometheus.Counter

	// Store metrics
	StoreTransitions *prometheus.CounterVec

	// View metrics
	ViewBuilds        *prometheus.CounterVec
	ViewBuildDuration *prometheus.HistogramVec
}

// NewCollector creates a metrics collector under the given namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		ArtifactsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_created_total",
			Help:      "Total number of artifacts created",
		}),
		ArtifactsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_deleted_total",
			Help:      "Total number of artifacts deleted",
		}),
		RelationshipsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relationships_created_total",
			Help:      "Total number of relationships created",
		}),
		RelationshipsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relationships_deleted_total",
			Help:      "Total number of relationships deleted, cascades included",
		}),
		CollectionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collections_created_total",
			Help:      "Total number of collections created",
		}),
		CascadedRelationshipDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascaded_relationship_deletes_total",
			Help:      "Relationships removed by artifact-deletion cascade",
		}),
		StoreTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_transitions_total",
			Help:      "View-state store transitions by action",
		}, []string{"action"}),
		ViewBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_builds_total",
			Help:      "View model builds by view kind",
		}, []string{"view"}),
		ViewBuildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_build_duration_seconds",
			Help:      "View model build duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"view"}),
	}

	registry.MustRegister(
		c.ArtifactsCreated,
		c.ArtifactsDeleted,
		c.RelationshipsCreated,
		c.RelationshipsDeleted,
		c.CollectionsCreated,
		c.CascadedRelationshipDeletes,
		c.StoreTransitions,
		c.ViewBuilds,
		c.ViewBuildDuration,
	)

	return c
}

// ObserveViewBuild records one view build with its duration.
func (c *Collector) ObserveViewBuild(view string, duration time.Duration) {
	c.ViewBuilds.WithLabelValues(view).Inc()
	c.ViewBuildDuration.WithLabelValues(view).Observe(duration.Seconds())
}

// GetRegistry returns the Prometheus registry for this collector.
func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}
