// Package metrics exposes counters for group-definition load activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchTotal counts fetch attempts by outcome.
	FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netinstall_fetch_total",
		Help: "Group document fetch attempts by outcome.",
	}, []string{"outcome"})

	// DocumentsParsed counts parsed documents by result.
	DocumentsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netinstall_documents_parsed_total",
		Help: "Group documents parsed by result.",
	}, []string{"result"})

	// RecordsPublished counts group records handed to the model.
	RecordsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netinstall_records_published_total",
		Help: "Group records published to the selection model.",
	})
)

// Outcome and result label values.
const (
	OutcomeOk            = "ok"
	OutcomeBadConfig     = "bad_configuration"
	OutcomeNetworkError  = "network_error"
	OutcomeInternalError = "internal_error"

	ResultOk        = "ok"
	ResultBadData   = "bad_data"
	ResultNoList    = "no_group_list"
	ResultEmptyList = "empty"
)
