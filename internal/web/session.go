// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/inkpost/inkpost/internal/blog"
)

// SessionCookieName is the cookie carrying the signed user id.
const SessionCookieName = "uid"

type contextKey int

const userContextKey contextKey = iota

// UserFromContext returns the authenticated user stored by the session
// middleware, or nil when the request carries no valid session.
func UserFromContext(ctx context.Context) *blog.User {
	user, _ := ctx.Value(userContextKey).(*blog.User)
	return user
}

// withSession resolves the uid cookie into a user and stashes it in the
// request context. A missing, tampered, or stale cookie is treated as no
// session; the request proceeds unauthenticated.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		value, ok := s.security.Verify(cookie.Value)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.service.GetUserByID(r.Context(), id)
		if err != nil {
			if !errors.Is(err, blog.ErrNotFound) {
				s.logger.Error("session user lookup failed", "user_id", id, "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// issueSession signs the user id into the session cookie.
func (s *Server) issueSession(w http.ResponseWriter, userID int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.security.Sign(strconv.FormatInt(userID, 10)),
		Path:     "/",
		HttpOnly: true,
	})
	if s.metrics != nil {
		s.metrics.SessionsIssuedTotal.Inc()
	}
}

// clearSession expires the session cookie.
func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
