package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Serve starts a standalone metrics listener when METRICS_ADDR is set.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "builder", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "builder", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	FetchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "builder", Name: "fetch_requests_total", Help: "Outbound page/asset fetches."},
		[]string{"kind", "outcome"}, // kind: page|asset; outcome: ok|error
	)
	FetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "builder", Name: "fetch_duration_seconds",
			Help:    "Outbound fetch duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
	AssetDownloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "builder", Name: "asset_downloads_total", Help: "Localized asset downloads."},
		[]string{"outcome"}, // ok|failed
	)
	SiteBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "builder", Name: "site_builds_total", Help: "Site generations."},
		[]string{"strategy", "outcome"}, // strategy: clone|template
	)
	BuildLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "builder", Name: "site_build_duration_seconds",
			Help:    "Full pipeline duration seconds.",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"strategy"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "builder", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, FetchRequests, FetchLatency,
		AssetDownloads, SiteBuilds, BuildLatency, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveFetch(kind string, err error, dur time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	FetchRequests.WithLabelValues(kind, outcome).Inc()
	FetchLatency.WithLabelValues(kind).Observe(dur.Seconds())
}

func ObserveAssets(downloaded, failed int) {
	if downloaded > 0 {
		AssetDownloads.WithLabelValues("ok").Add(float64(downloaded))
	}
	if failed > 0 {
		AssetDownloads.WithLabelValues("failed").Add(float64(failed))
	}
}

func ObserveBuild(strategy string, err error, dur time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	SiteBuilds.WithLabelValues(strategy, outcome).Inc()
	BuildLatency.WithLabelValues(strategy).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}
