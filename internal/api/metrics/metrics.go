// Package metrics defines and registers all custom Prometheus metrics for
// the resume platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resume_platform"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Resume / application metrics ──────────────────────────────────────────────

// ResumesCreatedTotal counts created resumes.
// Label:
//   - source: "manual" (JSON body) or "upload" (multipart document)
var ResumesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resumes_created_total",
		Help:      "Total number of resumes created, by source.",
	},
	[]string{"source"},
)

// ApplicationsCreatedTotal counts created job applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of job applications created.",
	},
)

// ── AI proxy metrics ──────────────────────────────────────────────────────────

// AIRequestsTotal counts upstream LLM calls.
// Labels:
//   - operation: "analyze", "match", or "rewrite"
//   - result: "success" or "error"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of upstream LLM calls, by operation and result.",
	},
	[]string{"operation", "result"},
)

// AIRequestDuration measures end-to-end upstream call latency.
// Label:
//   - operation: "analyze", "match", or "rewrite"
var AIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_request_duration_seconds",
		Help:      "Duration of upstream LLM calls.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	},
	[]string{"operation"},
)

// AIQuotaRejectionsTotal counts AI requests rejected by the daily usage quota.
var AIQuotaRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_quota_rejections_total",
		Help:      "Total number of AI requests rejected because the user exceeded the daily quota.",
	},
)
