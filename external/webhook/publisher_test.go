package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/logging"
)

func TestPublisher_DeliversToAllEndpoints(t *testing.T) {
	var first, second atomic.Int64

	srvA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var event Event
		if err := sonic.Unmarshal(body, &event); err != nil {
			t.Errorf("decode event: %v", err)
		}
		if event.Type != "standings.changed" {
			t.Errorf("unexpected event type: %q", event.Type)
		}
		first.Add(1)
	}))
	defer srvA.Close()

	srvB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		second.Add(1)
	}))
	defer srvB.Close()

	publisher := NewPublisher(Config{
		Endpoints: []string{srvA.URL, srvB.URL},
		Timeout:   2 * time.Second,
	}, logging.NewNop())

	if err := publisher.Publish(context.Background(), "standings.changed"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got := first.Load(); got != 1 {
		t.Fatalf("first endpoint deliveries got=%d want=1", got)
	}
	if got := second.Load(); got != 1 {
		t.Fatalf("second endpoint deliveries got=%d want=1", got)
	}
}

func TestPublisher_FailingEndpointDoesNotBlockOthers(t *testing.T) {
	var delivered atomic.Int64

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered.Add(1)
	}))
	defer healthy.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	publisher := NewPublisher(Config{
		Endpoints: []string{broken.URL, healthy.URL},
		Timeout:   2 * time.Second,
	}, logging.NewNop())

	err := publisher.Publish(context.Background(), "standings.changed")
	if err == nil {
		t.Fatalf("expected error from broken endpoint")
	}
	if got := delivered.Load(); got != 1 {
		t.Fatalf("healthy endpoint deliveries got=%d want=1", got)
	}
}

func TestPublisher_NoEndpointsIsNoop(t *testing.T) {
	publisher := NewPublisher(Config{}, logging.NewNop())
	if err := publisher.Publish(context.Background(), "standings.changed"); err != nil {
		t.Fatalf("publish: %v", err)
	}
}

func TestPublisher_EmptyEventTypeRejected(t *testing.T) {
	publisher := NewPublisher(Config{Endpoints: []string{"http://localhost:0"}}, logging.NewNop())
	if err := publisher.Publish(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty event type")
	}
}
