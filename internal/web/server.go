// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

// Package web serves the Inkpost HTML frontend: the public post pages and
// the session-authenticated forms for writing, editing, commenting, and
// liking.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/samber/oops"

	"github.com/inkpost/inkpost/internal/blog"
	"github.com/inkpost/inkpost/internal/observability"
	"github.com/inkpost/inkpost/internal/security"
)

// Server is the HTTP frontend.
type Server struct {
	addr     string
	service  *blog.Service
	security *security.Context
	metrics  *observability.Metrics
	logger   *slog.Logger
	tmpl     *renderer

	handler    http.Handler
	listener   net.Listener
	httpServer *http.Server
	running    atomic.Bool
}

// NewServer creates the frontend server. metrics may be nil when no
// observability server is running.
func NewServer(addr string, service *blog.Service, sec *security.Context, metrics *observability.Metrics, logger *slog.Logger) (*Server, error) {
	if service == nil {
		return nil, oops.Code("WEB_INVALID_DEPS").Errorf("blog service is required")
	}
	if sec == nil {
		return nil, oops.Code("WEB_INVALID_DEPS").Errorf("security context is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := newRenderer(logger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		addr:     addr,
		service:  service,
		security: sec,
		metrics:  metrics,
		logger:   logger,
		tmpl:     tmpl,
	}
	s.handler = s.withSession(s.routes())
	return s, nil
}

// routes registers every route with per-route instrumentation.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	reg := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, s.instrument(pattern, h))
	}

	reg("GET /{$}", s.handleFront)
	reg("GET /new_post", s.handleNewPostForm)
	reg("POST /new_post", s.handleNewPostSubmit)
	reg("GET /{id}", s.handleShowPost)
	reg("GET /{id}/update", s.handleUpdatePostForm)
	reg("POST /{id}/update", s.handleUpdatePostSubmit)
	reg("POST /{id}/delete", s.handleDeletePost)
	reg("POST /{id}/comment", s.handleAddComment)
	reg("POST /{id}/like", s.handleLikePost)
	reg("GET /comment/{id}/update", s.handleUpdateCommentForm)
	reg("POST /comment/{id}/update", s.handleUpdateCommentSubmit)
	reg("POST /comment/{id}/delete", s.handleDeleteComment)
	reg("GET /account/signup", s.handleSignupForm)
	reg("POST /account/signup", s.handleSignupSubmit)
	reg("GET /account", s.handleWelcome)
	reg("GET /account/login", s.handleLoginForm)
	reg("POST /account/login", s.handleLoginSubmit)
	reg("GET /account/logout", s.handleLogout)

	return mux
}

// Handler returns the full middleware-wrapped handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins serving the frontend. It returns an error channel that
// receives any error from the HTTP server after startup; the channel is
// closed on graceful shutdown.
func (s *Server) Start() (<-chan error, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, oops.Errorf("web server already running")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.running.Store(false)
		return nil, oops.With("addr", s.addr).Wrap(err)
	}
	s.listener = listener

	httpSrv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.httpServer = httpSrv

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		if serveErr := httpSrv.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			s.logger.Error("web server error", "error", serveErr)
			errCh <- serveErr
		}
	}()

	s.logger.Info("web server started", "addr", listener.Addr().String())
	return errCh, nil
}

// Stop gracefully shuts down the frontend server.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.running.Store(true)
			return oops.With("operation", "shutdown_web_server").Wrap(err)
		}
	}

	s.logger.Info("web server stopped")
	return nil
}

// Addr returns the listen address, or empty string if not running.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}
