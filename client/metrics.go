package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "donate_client",
			Name:      "requests_total",
			Help:      "API requests by method and envelope outcome (ok, failed, unstructured, mock).",
		},
		[]string{"method", "outcome"},
	)

	mockResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "donate_client",
			Name:      "mock_responses_total",
			Help:      "Canned development responses served, by matched pattern.",
		},
		[]string{"pattern"},
	)
)
