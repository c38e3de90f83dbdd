package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blockgame"

// Metrics holds the Prometheus collectors of a session. A nil *Metrics is valid and records nothing.
type Metrics struct {
	ticks        prometheus.Counter
	broken       prometheus.Counter
	placed       prometheus.Counter
	recoveries   *prometheus.CounterVec
	tickDuration prometheus.Histogram
}

// New creates the session collectors and registers them with reg. Nothing is registered if reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Number of simulation ticks run.",
		}),
		broken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_broken_total",
			Help:      "Number of blocks broken by the player.",
		}),
		placed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_placed_total",
			Help:      "Number of blocks placed by the player.",
		}),
		recoveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stuck_recoveries_total",
			Help:      "Number of times the player was moved out of a block, by kind of correction.",
		}, []string{"kind"}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Time taken to run a tick, including drawing the frame.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ticks, m.broken, m.placed, m.recoveries, m.tickDuration)
	}
	return m
}

// Tick records a tick that took d to run.
func (m *Metrics) Tick(d time.Duration) {
	if m == nil {
		return
	}
	m.ticks.Inc()
	m.tickDuration.Observe(d.Seconds())
}

// Broke records a broken block.
func (m *Metrics) Broke() {
	if m != nil {
		m.broken.Inc()
	}
}

// Placed records a placed block.
func (m *Metrics) Placed() {
	if m != nil {
		m.placed.Inc()
	}
}

// Recovered records a stuck recovery of the kind passed.
func (m *Metrics) Recovered(kind string) {
	if m != nil {
		m.recoveries.WithLabelValues(kind).Inc()
	}
}

// Serve serves the metrics gathered by g on addr under /metrics until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics on %s: %w", addr, err)
	}
	return nil
}
