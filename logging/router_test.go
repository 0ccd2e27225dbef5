package logging

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	closed bool
}

func (s *recordingSink) Write(evt Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	return nil
}

func (s *recordingSink) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestNewRouterRejectsNonPositiveBufferSize(t *testing.T) {
	t.Parallel()

	_, err := NewRouter(Config{BufferSize: 0}, SystemClock{}, nil, nil)
	if err == nil {
		t.Fatalf("expected a non-positive buffer size to be rejected")
	}
}

func TestNewRouterCountsUnavailableSinksAsDisabled(t *testing.T) {
	t.Parallel()

	r, err := NewRouter(Config{BufferSize: 8, EnabledSinks: []string{"missing"}}, SystemClock{}, nil, nil)
	if err != nil {
		t.Fatalf("expected router construction to succeed, got %v", err)
	}
	defer r.Close(context.Background())

	if got := r.MetricsSnapshot()["sink_disabled_total"]; got != 1 {
		t.Fatalf("expected one disabled-sink counter increment, got %d", got)
	}
}

func TestRouterPublishForwardsToConfiguredSink(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	r, err := NewRouter(Config{BufferSize: 8, EnabledSinks: []string{"rec"}}, SystemClock{}, nil, map[string]Sink{"rec": sink})
	if err != nil {
		t.Fatalf("expected router construction to succeed, got %v", err)
	}

	r.Publish(context.Background(), Event{Type: "kill"})
	r.Close(context.Background())

	if sink.count() != 1 {
		t.Fatalf("expected the sink to receive exactly one event, got %d", sink.count())
	}
	if !sink.closed {
		t.Fatalf("expected Close to close every configured sink")
	}
}

func TestRouterPublishFiltersBySeverity(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	r, err := NewRouter(Config{BufferSize: 8, EnabledSinks: []string{"rec"}, MinSeverity: SeverityWarn}, SystemClock{}, nil, map[string]Sink{"rec": sink})
	if err != nil {
		t.Fatalf("expected router construction to succeed, got %v", err)
	}

	r.Publish(context.Background(), Event{Type: "debug", Severity: SeverityDebug})
	r.Publish(context.Background(), Event{Type: "warn", Severity: SeverityWarn})
	r.Close(context.Background())

	if sink.count() != 1 {
		t.Fatalf("expected only the event meeting the minimum severity to be forwarded, got %d", sink.count())
	}
}

func TestRouterPublishFiltersByCategory(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	r, err := NewRouter(Config{BufferSize: 8, EnabledSinks: []string{"rec"}, Categories: []Category{"combat"}}, SystemClock{}, nil, map[string]Sink{"rec": sink})
	if err != nil {
		t.Fatalf("expected router construction to succeed, got %v", err)
	}

	r.Publish(context.Background(), Event{Type: "chat", Category: "social"})
	r.Publish(context.Background(), Event{Type: "kill", Category: "combat"})
	r.Close(context.Background())

	if sink.count() != 1 {
		t.Fatalf("expected only events in an allowed category to be forwarded, got %d", sink.count())
	}
}

func TestRouterPublishStampsTimeWhenZero(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	r, err := NewRouter(Config{BufferSize: 8, EnabledSinks: []string{"rec"}}, SystemClock{}, nil, map[string]Sink{"rec": sink})
	if err != nil {
		t.Fatalf("expected router construction to succeed, got %v", err)
	}

	r.Publish(context.Background(), Event{Type: "kill"})
	r.Close(context.Background())

	if len(sink.events) != 1 || sink.events[0].Time.IsZero() {
		t.Fatalf("expected the router to stamp a zero-valued event time, got %+v", sink.events)
	}
}

func TestRouterPublishIgnoresCancelledContext(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	r, err := NewRouter(Config{BufferSize: 8, EnabledSinks: []string{"rec"}}, SystemClock{}, nil, map[string]Sink{"rec": sink})
	if err != nil {
		t.Fatalf("expected router construction to succeed, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Publish(ctx, Event{Type: "kill"})
	r.Close(context.Background())

	if sink.count() != 0 {
		t.Fatalf("expected a publish with an already-cancelled context to be dropped, got %d events", sink.count())
	}
}

func TestMetricsTelemetryAddAndStore(t *testing.T) {
	t.Parallel()

	var m Metrics
	m.TelemetryAdd("drops", 3)
	m.TelemetryAdd("drops", 2)
	m.TelemetryStore("queue_depth", 7)

	snap := m.Snapshot()
	if snap["drops"] != 5 {
		t.Fatalf("expected accumulated telemetry counter to be 5, got %d", snap["drops"])
	}
	if snap["queue_depth"] != 7 {
		t.Fatalf("expected a stored gauge value of 7, got %d", snap["queue_depth"])
	}
}

func TestRouterCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	r, err := NewRouter(Config{BufferSize: 8}, SystemClock{}, nil, nil)
	if err != nil {
		t.Fatalf("expected router construction to succeed, got %v", err)
	}

	if err := r.Close(context.Background()); err != nil {
		t.Fatalf("expected first Close to succeed, got %v", err)
	}
	if err := r.Close(context.Background()); err != nil {
		t.Fatalf("expected a second Close call to be a safe no-op, got %v", err)
	}
}

func TestSystemClockNowAdvances(t *testing.T) {
	t.Parallel()

	clock := SystemClock{}
	a := clock.Now()
	time.Sleep(time.Millisecond)
	b := clock.Now()
	if !b.After(a) {
		t.Fatalf("expected SystemClock.Now to advance, got %v then %v", a, b)
	}
}
