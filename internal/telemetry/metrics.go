package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics with bounded cardinality: no per-player or per-room labels.
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arena_tick_duration_seconds",
		Help:    "Time spent running one room tick",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.02, 0.05},
	})

	roomsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_rooms_active",
		Help: "Currently active rooms",
	})

	playersActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_players_active",
		Help: "Currently active players across all rooms",
	})

	commandsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_commands_dropped_total",
		Help: "Commands dropped by the loop's command queue",
	}, []string{"reason"})

	wsConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_websocket_connections_active",
		Help: "Currently active WebSocket connections",
	})
)

// RecordTick records one tick's wall-clock duration.
func RecordTick(d time.Duration) {
	tickDuration.Observe(d.Seconds())
}

// SetRoomsActive updates the room gauge.
func SetRoomsActive(n int) {
	roomsActive.Set(float64(n))
}

// SetPlayersActive updates the player gauge.
func SetPlayersActive(n int) {
	playersActive.Set(float64(n))
}

// RecordCommandDrop increments the drop counter for the given reason.
func RecordCommandDrop(reason string) {
	commandsDropped.WithLabelValues(reason).Inc()
}

// SetWSConnectionsActive updates the websocket connection gauge.
func SetWSConnectionsActive(n int) {
	wsConnectionsActive.Set(float64(n))
}

// Handler returns the /metrics HTTP handler for a Prometheus scraper.
func Handler() http.Handler {
	return promhttp.Handler()
}
