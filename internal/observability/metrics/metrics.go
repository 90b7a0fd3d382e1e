package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}

var (
	once                           sync.Once
	registerOnce                   sync.Once
	metricsRouter                  *chi.Mux
	clientRequestDurationHistogram *prometheus.HistogramVec
	clientLatency                  *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	snapshotCounter                *prometheus.CounterVec
	graphqlRequestDuration         *prometheus.HistogramVec
	reportedErrorsCounter          *prometheus.CounterVec
	dbLatency                      *prometheus.HistogramVec
)

// Init starts the metrics server and registers the metrics.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		register()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

func register() {
	registerOnce.Do(registerMetrics)
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	clientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adapter_latency_seconds",
			Help:    "Histogram of market data adapter call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"adapter", "method", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	snapshotCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshots_appended_total",
			Help: "Number of snapshot appends split by job and outcome",
		},
		[]string{"job", "status"},
	)

	graphqlRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphql_request_duration_seconds",
			Help:    "Histogram of graphql http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	reportedErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reported_errors_total",
			Help: "Number of errors sent to the error tracker",
		},
		[]string{"component"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		clientRequestDurationHistogram,
		clientLatency,
		pollerDurationHistogram,
		snapshotCounter,
		graphqlRequestDuration,
		reportedErrorsCounter,
		dbLatency,
	)
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	register()
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordAdapterLatency(d time.Duration, adapter, method string, failure bool) {
	register()
	clientLatency.WithLabelValues(adapter, method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordSnapshot(job string, failure bool) {
	register()
	snapshotCounter.WithLabelValues(job, outcome(failure).String()).Inc()
}

func RecordGraphqlRequestDuration(d time.Duration, statusCode int) {
	register()
	graphqlRequestDuration.WithLabelValues(strconv.Itoa(statusCode)).Observe(d.Seconds())
}

func RecordReportedError(component string) {
	register()
	reportedErrorsCounter.WithLabelValues(component).Inc()
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	register()
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}
