package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// WebhookNotifier implements Notifier by POSTing JSON to a configured
// endpoint. Sends are rate limited so a burst of scheduled imports cannot
// flood the receiver.
type WebhookNotifier struct {
	url     string
	headers map[string]string
	client  *http.Client
	limiter *rate.Limiter
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(url string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		url:     url,
		client:  http.DefaultClient,
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// WithHeaders sets extra headers sent with every request.
func WithHeaders(h map[string]string) WebhookOption {
	return func(w *WebhookNotifier) {
		w.headers = h
	}
}

// WithRateLimit sets the send rate and burst.
func WithRateLimit(perSecond float64, burst int) WebhookOption {
	return func(w *WebhookNotifier) {
		w.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// webhookPayload is the JSON body posted to the endpoint.
type webhookPayload struct {
	Event     string                `json:"event"`
	Timestamp time.Time             `json:"timestamp"`
	Platform  domain.Platform       `json:"platform,omitempty"`
	Summary   *domain.ImportSummary `json:"summary,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// SendImportSummary posts a completed import's summary.
func (w *WebhookNotifier) SendImportSummary(
	ctx context.Context,
	summary *domain.ImportSummary,
) error {
	return w.post(ctx, webhookPayload{
		Event:     "import.completed",
		Timestamp: time.Now().UTC(),
		Platform:  summary.Platform,
		Summary:   summary,
	})
}

// SendImportFailure posts an import failure notice.
func (w *WebhookNotifier) SendImportFailure(
	ctx context.Context,
	platform domain.Platform,
	errText string,
) error {
	return w.post(ctx, webhookPayload{
		Event:     "import.failed",
		Timestamp: time.Now().UTC(),
		Platform:  platform,
		Error:     errText,
	})
}

func (w *WebhookNotifier) post(ctx context.Context, payload webhookPayload) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for webhook rate limit: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.url,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("webhook rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("webhook returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
