package webhook

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ufaleague/league-api/internal/platform/logging"
	"github.com/ufaleague/league-api/internal/platform/resilience"
)

var errWebhookTransient = crerr.New("webhook transient failure")

type NotifierConfig struct {
	URL            string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Notifier delivers schedule change events to a committee-configured webhook.
// Delivery is best-effort: failures are logged and absorbed so a dead listener
// never blocks a schedule write.
type Notifier struct {
	client         *http.Client
	url            string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewNotifier(cfg NotifierConfig, logger *logging.Logger) *Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Notifier{
		client: &http.Client{
			Timeout: timeout,
		},
		url:            strings.TrimSpace(cfg.URL),
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type eventEnvelope struct {
	Event      string `json:"event"`
	OccurredAt string `json:"occurredAt"`
	Payload    any    `json:"payload"`
}

func (n *Notifier) Publish(ctx context.Context, event string, payload any) {
	if err := n.publish(ctx, event, payload); err != nil {
		n.logger.WarnContext(ctx, "webhook delivery failed", "event", event, "error", err)
	}
}

func (n *Notifier) publish(ctx context.Context, event string, payload any) error {
	if n.circuitEnabled {
		if err := n.breaker.Allow(); err != nil {
			return fmt.Errorf("webhook is temporarily unavailable (state=%s): %w", n.breaker.State(), err)
		}
	}

	target, err := validateHTTPURL(n.url)
	if err != nil {
		return crerr.Wrap(err, "invalid WEBHOOK_URL")
	}

	if payload == nil {
		payload = map[string]any{}
	}
	envelope := eventEnvelope{
		Event:      event,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    payload,
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(envelope); err != nil {
		return crerr.Wrap(err, "marshal webhook payload")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("webhook.url", target),
			attribute.String("webhook.event", event),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(buf.B))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("X-Webhook-Token", n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: post webhook event=%s url=%s: %v", errWebhookTransient, event, target, err)
		n.recordCircuitResult(callErr)
		return callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		callErr := fmt.Errorf(
			"post webhook event=%s url=%s status=%d body=%s",
			event,
			target,
			resp.StatusCode,
			strings.TrimSpace(string(raw)),
		)
		if isRetryableStatus(resp.StatusCode) {
			callErr = fmt.Errorf("%w: %v", errWebhookTransient, callErr)
		}
		n.recordCircuitResult(callErr)
		return callErr
	}

	n.logger.InfoContext(ctx, "webhook event delivered", "event", event, "status", resp.StatusCode)
	n.recordCircuitResult(nil)
	return nil
}

func (n *Notifier) recordCircuitResult(err error) {
	if !n.circuitEnabled || n.breaker == nil {
		return
	}
	if err == nil {
		n.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errWebhookTransient) {
		n.breaker.RecordFailure()
		return
	}
	n.breaker.RecordSuccess()
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
