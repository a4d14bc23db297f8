package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SummariesGenerated counts rendered summaries by offered resolution.
	SummariesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lobsum_summaries_generated_total",
		Help: "Total generated summaries by offered resolution",
	}, []string{"resolution"})

	// KnowledgeReloads counts knowledge-base builds by outcome
	// (loaded or fallback).
	KnowledgeReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lobsum_knowledge_reloads_total",
		Help: "Total knowledge base builds by outcome",
	}, []string{"outcome"})

	// MatchLookups counts advisory matcher lookups by outcome
	// (matched or unmatched).
	MatchLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lobsum_match_lookups_total",
		Help: "Total advisory match lookups by outcome",
	}, []string{"outcome"})
)
