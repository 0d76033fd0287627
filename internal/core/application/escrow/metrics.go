package escrow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opCreate = "create"
	opAccept = "accept"
	opCancel = "cancel"
)

var (
	offersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "escrowd",
		Name:      "offers_created_total",
		Help:      "Number of offers opened.",
	})
	offersAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "escrowd",
		Name:      "offers_accepted_total",
		Help:      "Number of offers settled by their counterparty.",
	})
	offersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "escrowd",
		Name:      "offers_cancelled_total",
		Help:      "Number of offers cancelled by their creator.",
	})
	offerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "escrowd",
		Name:      "offer_operation_failures_total",
		Help:      "Number of failed offer operations by operation.",
	}, []string{"operation"})
)
