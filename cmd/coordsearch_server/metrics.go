//nolint:gochecknoglobals
package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recognizedMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gocoord",
		Name:      "coordinates_recognized",
		Help:      "The total number of recognized coordinates",
	}, []string{"source", "pattern"})

	unrecognizedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gocoord",
		Name:      "coordinates_unrecognized",
		Help:      "The total number of texts with no coordinate",
	})

	formattedMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gocoord",
		Name:      "coordinates_formatted",
		Help:      "The total number of formatted coordinates",
	}, []string{"system"})

	centroidMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gocoord",
		Name:      "centroids",
		Help:      "The total number of centroid requests",
	}, []string{"result"})
)
