// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package observability

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func startServer(t *testing.T, ready ReadinessChecker) *Server {
	t.Helper()
	server := NewServer("127.0.0.1:0", ready)

	if _, err := server.Start(); err != nil {
		t.Fatalf("failed to start server: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Stop(ctx)
	})

	if server.Addr() == "" {
		t.Fatal("server address is empty")
	}
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("failed to GET %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestServer_Metrics(t *testing.T) {
	server := startServer(t, func() bool { return true })

	status, body := get(t, "http://"+server.Addr()+"/metrics")
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
	if !strings.Contains(body, "# HELP") || !strings.Contains(body, "# TYPE") {
		t.Error("expected Prometheus exposition format")
	}
	if !strings.Contains(body, "go_") {
		t.Error("expected go_* metrics")
	}
	if !strings.Contains(body, "process_") {
		t.Error("expected process_* metrics")
	}

	// Custom metrics only appear once incremented
	metrics := server.Metrics()
	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/", "200").Inc()
	metrics.SessionsIssuedTotal.Inc()
	RecordRenderFailure("front")

	_, body = get(t, "http://"+server.Addr()+"/metrics")
	if !strings.Contains(body, "inkpost_http_requests_total") {
		t.Error("expected inkpost_http_requests_total metric")
	}
	if !strings.Contains(body, "inkpost_sessions_issued_total") {
		t.Error("expected inkpost_sessions_issued_total metric")
	}
	if !strings.Contains(body, "inkpost_template_render_failures_total") {
		t.Error("expected inkpost_template_render_failures_total metric")
	}
}

func TestServer_Liveness(t *testing.T) {
	server := startServer(t, func() bool { return true })

	status, body := get(t, "http://"+server.Addr()+"/healthz/liveness")
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("expected body 'ok', got %q", body)
	}
}

func TestServer_Readiness(t *testing.T) {
	ready := false
	server := startServer(t, func() bool { return ready })

	status, _ := get(t, "http://"+server.Addr()+"/healthz/readiness")
	if status != http.StatusServiceUnavailable {
		t.Errorf("expected status 503 when not ready, got %d", status)
	}

	ready = true
	status, _ = get(t, "http://"+server.Addr()+"/healthz/readiness")
	if status != http.StatusOK {
		t.Errorf("expected status 200 when ready, got %d", status)
	}
}

func TestServer_StartTwice(t *testing.T) {
	server := startServer(t, nil)

	if _, err := server.Start(); err == nil {
		t.Error("expected error starting an already-running server")
	}
}

func TestServer_StopIdempotent(t *testing.T) {
	server := startServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		t.Fatalf("first Stop() error = %v", err)
	}
	if err := server.Stop(ctx); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
}
