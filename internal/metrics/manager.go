package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests             *prometheus.CounterVec
	CounterHandleRequestPanic   prometheus.Counter
	CounterTemplateScorings     *prometheus.CounterVec
	CounterRecommendationCache  *prometheus.CounterVec
	CounterSessionsCompleted    prometheus.Counter
	CounterLeaderboardRefreshes *prometheus.CounterVec

	// gauges
	GaugeRequests prometheus.Gauge

	// histograms
	HistRequestDuration      *prometheus.HistogramVec
	HistStatsRefreshDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("myo", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("myo", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterTemplateScorings := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "template_scorings",
		Help:      "The total number of template scoring runs, by best template",
	}, []string{"template"})
	counterRecommendationCache := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendation_cache",
		Help:      "Recommendation cache lookups, by result",
	}, []string{"result"})
	counterSessionsCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_completed",
		Help:      "The total number of completed training sessions",
	})
	counterLeaderboardRefreshes := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "leaderboard_refreshes",
		Help:      "Per-user leaderboard stats refreshes, by outcome",
	}, []string{"outcome"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})

	histReqDuration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0005, 0.001, 0.0025, 0.005, 0.01,
				0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 10,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
		[]string{"route"},
	)
	histStatsRefreshDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.01, 0.1, 1, 10, 60, 120, 240, 480, 1000,
			},
			Name: "leaderboard_refresh_duration_seconds",
			Help: "Duration of a full leaderboard stats refresh in seconds",
		},
	)

	return &Manager{
		CounterRequests:             counterRequests,
		CounterHandleRequestPanic:   counterHandleRequestPanic,
		CounterTemplateScorings:     counterTemplateScorings,
		CounterRecommendationCache:  counterRecommendationCache,
		CounterSessionsCompleted:    counterSessionsCompleted,
		CounterLeaderboardRefreshes: counterLeaderboardRefreshes,
		GaugeRequests:               gaugeRequests,
		HistRequestDuration:         histReqDuration,
		HistStatsRefreshDuration:    histStatsRefreshDuration,
	}
}
