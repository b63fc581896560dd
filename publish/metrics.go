package publish

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entitiesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gocam_publish_entities_total",
		Help: "Number of graph entities published to the ingest subject.",
	})

	triplesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gocam_publish_triples_total",
		Help: "Number of triples published across all entities.",
	})

	publishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gocam_publish_errors_total",
		Help: "Number of failed entity publish attempts.",
	})
)
