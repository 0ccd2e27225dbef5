package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordTickObservesHistogram(t *testing.T) {
	before := testutil.CollectAndCount(tickDuration)

	RecordTick(5 * time.Millisecond)

	after := testutil.CollectAndCount(tickDuration)
	if after != before+1 {
		t.Fatalf("expected RecordTick to add one histogram observation, got %d before, %d after", before, after)
	}
}

func TestSetRoomsActiveUpdatesGauge(t *testing.T) {
	SetRoomsActive(3)
	if got := testutil.ToFloat64(roomsActive); got != 3 {
		t.Fatalf("expected the rooms-active gauge to read 3, got %v", got)
	}
	SetRoomsActive(0)
	if got := testutil.ToFloat64(roomsActive); got != 0 {
		t.Fatalf("expected the rooms-active gauge to read 0, got %v", got)
	}
}

func TestSetPlayersActiveUpdatesGauge(t *testing.T) {
	SetPlayersActive(12)
	if got := testutil.ToFloat64(playersActive); got != 12 {
		t.Fatalf("expected the players-active gauge to read 12, got %v", got)
	}
}

func TestRecordCommandDropIncrementsByReason(t *testing.T) {
	before := testutil.ToFloat64(commandsDropped.WithLabelValues("queue_full"))

	RecordCommandDrop("queue_full")

	after := testutil.ToFloat64(commandsDropped.WithLabelValues("queue_full"))
	if after != before+1 {
		t.Fatalf("expected the drop counter for reason queue_full to increment by 1, got %v then %v", before, after)
	}
}

func TestSetWSConnectionsActiveUpdatesGauge(t *testing.T) {
	SetWSConnectionsActive(4)
	if got := testutil.ToFloat64(wsConnectionsActive); got != 4 {
		t.Fatalf("expected the websocket connections gauge to read 4, got %v", got)
	}
}

func TestHandlerServesPrometheusFormat(t *testing.T) {
	SetRoomsActive(1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	Handler().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected /metrics to respond 200, got %d", resp.Code)
	}
	if resp.Body.Len() == 0 {
		t.Fatalf("expected a non-empty metrics body")
	}
}
