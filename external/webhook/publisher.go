package webhook

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/logging"
)

// Config carries the endpoint list and transport settings for outgoing
// change notifications.
type Config struct {
	Endpoints []string
	Timeout   time.Duration
}

// Publisher pushes change notifications to every configured endpoint.
// Delivery is best effort: a failing endpoint never blocks the others.
type Publisher struct {
	client    *fasthttp.Client
	endpoints []string
	timeout   time.Duration
	logger    *logging.Logger
}

// Event is the notification body delivered to each endpoint.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewPublisher(cfg Config, logger *logging.Logger) *Publisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	endpoints := make([]string, 0, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		endpoint = strings.TrimSpace(endpoint)
		if endpoint == "" {
			continue
		}
		endpoints = append(endpoints, endpoint)
	}

	return &Publisher{
		client:    &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		endpoints: endpoints,
		timeout:   timeout,
		logger:    logger,
	}
}

// Publish sends the event to all endpoints concurrently and returns the
// combined error of the deliveries that failed.
func (p *Publisher) Publish(ctx context.Context, eventType string) error {
	if len(p.endpoints) == 0 {
		return nil
	}

	event := Event{
		Type:       strings.TrimSpace(eventType),
		OccurredAt: time.Now().UTC(),
	}
	if event.Type == "" {
		return crerr.New("event type is required")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(event); err != nil {
		return crerr.Wrap(err, "marshal webhook event")
	}
	body := append([]byte(nil), buf.Bytes()...)

	deliveries := pool.New().WithErrors().WithContext(ctx)
	for _, endpoint := range p.endpoints {
		endpoint := endpoint
		deliveries.Go(func(ctx context.Context) error {
			if err := p.deliver(endpoint, body); err != nil {
				p.logger.WarnContext(ctx, "webhook delivery failed", "endpoint", endpoint, "error", err)
				return crerr.Wrapf(err, "deliver to %s", endpoint)
			}
			p.logger.DebugContext(ctx, "webhook delivered", "endpoint", endpoint, "type", event.Type)
			return nil
		})
	}

	return deliveries.Wait()
}

func (p *Publisher) deliver(endpoint string, body []byte) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := p.client.DoTimeout(req, resp, p.timeout); err != nil {
		return crerr.Wrap(err, "post webhook")
	}

	if resp.StatusCode()/100 != 2 {
		return crerr.Newf("webhook endpoint returned status=%d body=%s",
			resp.StatusCode(), truncateForLog(string(resp.Body()), 512))
	}

	return nil
}

func truncateForLog(value string, max int) string {
	value = strings.TrimSpace(value)
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
