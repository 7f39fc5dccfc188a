// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/samber/oops"

	"github.com/inkpost/inkpost/internal/observability"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages lists every template rendered inside the base layout.
var pages = []string{
	"index",
	"post",
	"post_form",
	"comment_form",
	"signup",
	"login",
	"welcome",
}

// renderer holds one parsed template set per page, each sharing the base
// layout.
type renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

func newRenderer(logger *slog.Logger) (*renderer, error) {
	r := &renderer{
		templates: make(map[string]*template.Template, len(pages)),
		logger:    logger,
	}
	for _, page := range pages {
		t, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, oops.Code("TEMPLATE_PARSE_FAILED").With("page", page).Wrap(err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// render writes the page with the given data and the provided status code.
// Render failures are logged and counted; the client gets a 500.
func (r *renderer) render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := r.templates[page]
	if !ok {
		r.logger.Error("unknown template page", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base.html", data); err != nil {
		observability.RecordRenderFailure(page)
		r.logger.Error("template render failed", "page", page, "error", err)
	}
}
