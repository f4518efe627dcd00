// Package viewergrp serves the browser page that follows the ledger.
package viewergrp

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/barrycoin/barrycoin/foundation/web"
)

//go:embed assets/index.html
var assets embed.FS

// Handlers manages the set of viewer endpoints.
type Handlers struct {
	index *template.Template
}

// New parses the index page.
func New() (Handlers, error) {
	index, err := template.ParseFS(assets, "assets/index.html")
	if err != nil {
		return Handlers{}, fmt.Errorf("loading index template: %w", err)
	}

	return Handlers{index: index}, nil
}

// Index renders the page pointed at the node handling the request.
func (h Handlers) Index(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	data := struct {
		Host string
	}{
		Host: r.Host,
	}

	var buf bytes.Buffer
	if err := h.index.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing index template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	web.SetStatusCode(ctx, http.StatusOK)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	return nil
}
