package app

import (
	"testing"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/config"
	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/logging"
)

func TestNewHTTPServer_MemoryRepositories(t *testing.T) {
	cfg := config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		NotifyWorkers:      2,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        5 * time.Second,
	}

	srv, cleanup, err := NewHTTPServer(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	defer cleanup()

	if srv.Handler == nil {
		t.Fatalf("expected handler to be wired")
	}
	if srv.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected ReadTimeout: %s", srv.ReadTimeout)
	}
}

func TestNewHTTPServer_EmptyAddrRejected(t *testing.T) {
	cfg := config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           "",
		NotifyWorkers:      1,
		CORSAllowedOrigins: []string{"*"},
	}

	if _, _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
