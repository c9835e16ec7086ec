// Package metrics は /metrics で公開する Prometheus コレクタをまとめます。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 採点結果のラベル
const (
	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
	OutcomeConflict  = "conflict"
	OutcomeError     = "error"
)

var (
	// Gradings は採点回数を結果別に数えます。
	Gradings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_drill_gradings_total",
		Help: "Total gradings by outcome",
	}, []string{"outcome"})

	// MistakeFlagTransitions は誤答フラグの付与 (raised) と解除 (cleared) を数えます。
	MistakeFlagTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_drill_mistake_flag_transitions_total",
		Help: "Mistake flag transitions by direction",
	}, []string{"direction"})

	SessionsComposed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_drill_sessions_composed_total",
		Help: "Total composed sessions by plan status",
	}, []string{"status"})

	// SessionSize はセッションに含まれるペア数の分布です。
	SessionSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vocab_drill_session_size",
		Help:    "Number of pairs per composed session",
		Buckets: []float64{0, 5, 10, 20, 30, 50, 100, 200},
	})

	// HTTPRequests はルートパターン単位のリクエスト数です (パスの ID はラベルに含めない)。
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_drill_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vocab_drill_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
	}, []string{"method", "route"})
)
