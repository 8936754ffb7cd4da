package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tuiter-app/tuiter/infra/logging"
)

var (
	APIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tuiter_api_requests_total",
		Help: "API requests by method and status code",
	}, []string{"method", "code"})
	APIDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tuiter_api_request_duration_seconds",
		Help:    "API request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	FeedPages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tuiter_feed_pages_total",
		Help: "Feed pages applied to the local state by load kind",
	}, []string{"kind"})
	LikeToggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tuiter_like_toggles_total",
		Help: "Like toggles by outcome",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(APIRequests, APIDuration, FeedPages, LikeToggles)
}

// ObserveRequest records one API round trip. code is 0 for transport failures.
func ObserveRequest(method string, code int, start time.Time) {
	APIRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	APIDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// IncFeedPage counts an applied feed page ("initial", "refresh", "more").
func IncFeedPage(kind string) { FeedPages.WithLabelValues(kind).Inc() }

// IncLikeToggle counts a like toggle outcome ("ok", "error", "unknown", "busy").
func IncLikeToggle(outcome string) { LikeToggles.WithLabelValues(outcome).Inc() }

// StartServer serves /metrics on addr in the background. Empty addr disables it.
func StartServer(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logging.Error.Printf("metrics server: %v", err)
		}
	}()
}
