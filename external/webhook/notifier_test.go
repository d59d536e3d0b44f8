package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/ufaleague/league-api/internal/platform/logging"
	"github.com/ufaleague/league-api/internal/platform/resilience"
)

func TestNotifier_DeliversEnvelope(t *testing.T) {
	var gotToken string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Webhook-Token")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewNotifier(NotifierConfig{URL: server.URL, Token: "hook-secret"}, logging.NewNop())
	n.Publish(context.Background(), "fixture.moved", map[string]string{"fixtureId": "fx-1"})

	if gotToken != "hook-secret" {
		t.Fatalf("token header = %q", gotToken)
	}

	var envelope struct {
		Event      string            `json:"event"`
		OccurredAt string            `json:"occurredAt"`
		Payload    map[string]string `json:"payload"`
	}
	if err := sonic.Unmarshal(gotBody, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v\nbody: %s", err, gotBody)
	}
	if envelope.Event != "fixture.moved" {
		t.Fatalf("event = %q", envelope.Event)
	}
	if envelope.OccurredAt == "" {
		t.Fatal("expected occurredAt timestamp")
	}
	if envelope.Payload["fixtureId"] != "fx-1" {
		t.Fatalf("payload = %v", envelope.Payload)
	}
}

func TestNotifier_AbsorbsServerErrors(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewNotifier(NotifierConfig{URL: server.URL}, logging.NewNop())

	// Publish never panics or blocks on a failing listener.
	n.Publish(context.Background(), "schedule.generated", nil)
	n.Publish(context.Background(), "schedule.generated", nil)
	if calls != 2 {
		t.Fatalf("calls = %d", calls)
	}
}

func TestNotifier_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	n := NewNotifier(NotifierConfig{
		URL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      resilience.DefaultCircuitBreakerConfig().OpenTimeout,
			HalfOpenMaxReq:   1,
		},
	}, logging.NewNop())

	for i := 0; i < 5; i++ {
		n.Publish(context.Background(), "schedule.generated", nil)
	}
	if calls != 2 {
		t.Fatalf("expected the breaker to stop calls after 2 failures, got %d", calls)
	}
}

func TestNotifier_InvalidURL(t *testing.T) {
	n := NewNotifier(NotifierConfig{URL: "not a url"}, logging.NewNop())

	// Misconfiguration is logged, not fatal.
	n.Publish(context.Background(), "fixture.moved", nil)
}
