package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/specialistvlad/assetpath/internal/catalog"
)

const shutdownTimeout = 5 * time.Second

// Handler returns the HTTP API of the application.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /resolve/{id}", a.resolveHandler)
	mux.HandleFunc("GET /assets/{id}", a.redirectHandler)
	mux.Handle("GET /metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	return otelhttp.NewHandler(mux, "assetpath")
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) resolveHandler(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("id")
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("asset.ref", ref))

	e, err := a.lookup(ref)
	if err == nil {
		var url string
		url, err = a.resolver.Resolve(e.ID)
		if err == nil {
			writeJSON(w, http.StatusOK, Listing{ID: e.ID, Address: e.Address().String(), URL: url})
			return
		}
	}
	a.writeError(w, ref, err)
}

func (a *App) redirectHandler(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("id")
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("asset.ref", ref))

	url, err := a.ResolveRef(ref)
	if err != nil {
		a.writeError(w, ref, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func (a *App) writeError(w http.ResponseWriter, ref string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, catalog.ErrNotFound) {
		status = http.StatusNotFound
	}
	a.logger.Debug("Request failed.", "ref", ref, "status", status, "error", err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Serve warms the memoization table and serves the HTTP API until ctx is
// cancelled, then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	if err := a.resolver.Warm(ctx, a.config.WarmLimit); err != nil {
		return fmt.Errorf("failed to warm resolver: %w", err)
	}
	a.logger.Debug("Resolver warmed.", "entries", a.resolver.Len())

	ln, err := net.Listen("tcp", a.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Addr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	a.httpServer = &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Asset server starting", "address", ln.Addr().String())
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("asset server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	a.logger.Info("Shutting down asset server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Asset server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("Asset server shut down gracefully.")
	return nil
}
