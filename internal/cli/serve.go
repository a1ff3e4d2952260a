package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/tessellate/mosaic/pkg/cache"
	mosaicerrors "github.com/tessellate/mosaic/pkg/errors"
	"github.com/tessellate/mosaic/pkg/manifest"
	"github.com/tessellate/mosaic/pkg/masonry"
)

// serveCommand creates the serve command for the inspection API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve [manifest.json]",
		Short: "Serve layouts and windows over HTTP",
		Long: `Serve layouts and windows over HTTP.

The serve command loads a manifest once and exposes a read-only inspection
API over it:

  GET /healthz                   liveness probe
  GET /layout?width=1200         full layout for a container width
  GET /window?width=1200&scroll=0&height=800&buffer=1000
                                 the visible window for a viewport

Layouts are cached in memory per (width, columns, gap), so repeated window
queries against the same geometry do not re-pack.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.ReadFile(args[0])
			if err != nil {
				return err
			}
			cfg, err := resolveConfig(configFile, nil)
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, m, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/mosaic/config.toml)")

	return cmd
}

// server holds the loaded manifest and the per-process layout cache.
type server struct {
	cli      *CLI
	manifest *manifest.Manifest
	cfg      masonry.Config
	store    cache.Cache
	keyer    cache.Keyer
}

// runServe blocks until the context is cancelled or the listener fails.
func (c *CLI) runServe(ctx context.Context, addr string, m *manifest.Manifest, cfg masonry.Config) error {
	s := &server{
		cli:      c,
		manifest: m,
		cfg:      cfg,
		store:    cache.NewMemoryCache(),
		keyer:    manifestKeyer(m),
	}
	defer s.store.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving inspection API", "addr", addr, "items", len(m.Items))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// routes assembles the inspection API router.
func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/layout", s.handleLayout)
	r.Get("/window", s.handleWindow)
	return r
}

// logRequests logs each request through the CLI logger.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.cli.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"items":  len(s.manifest.Items),
	})
}

// handleLayout returns the full layout for a container width.
func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	width, err := queryFloat(r, "width", 1200)
	if err != nil {
		writeError(w, err)
		return
	}
	columns, err := queryInt(r, "columns", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	if columns < 1 {
		columns = masonry.ColumnCount(width, s.cfg.MinColumnWidth, s.cfg.Gap)
	}

	res, _, err := computeLayout(r.Context(), s.store, s.keyer, s.manifest.Items, columns, width, s.cfg.Gap)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleWindow returns the visible window for a viewport.
func (s *server) handleWindow(w http.ResponseWriter, r *http.Request) {
	width, err := queryFloat(r, "width", 1200)
	if err != nil {
		writeError(w, err)
		return
	}
	scroll, err := queryFloat(r, "scroll", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	height, err := queryFloat(r, "height", 800)
	if err != nil {
		writeError(w, err)
		return
	}
	buffer, err := queryFloat(r, "buffer", s.cfg.Buffer)
	if err != nil {
		writeError(w, err)
		return
	}
	if height <= 0 {
		writeError(w, mosaicerrors.New(mosaicerrors.ErrCodeInvalidViewport, "height must be positive, got %v", height))
		return
	}
	if scroll < 0 {
		scroll = 0
	}

	columns := masonry.ColumnCount(width, s.cfg.MinColumnWidth, s.cfg.Gap)
	res, _, err := computeLayout(r.Context(), s.store, s.keyer, s.manifest.Items, columns, width, s.cfg.Gap)
	if err != nil {
		writeError(w, err)
		return
	}

	vp := masonry.Viewport{ContainerWidth: width, ContainerHeight: height, ScrollTop: scroll}
	visible := masonry.Visible(s.manifest.Items, res, vp, buffer)
	writeJSON(w, http.StatusOK, newWindowOutput(res, vp, buffer, visible))
}

// =============================================================================
// HTTP Helpers
// =============================================================================

func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, mosaicerrors.New(mosaicerrors.ErrCodeInvalidViewport, "invalid %s %q", name, raw)
	}
	return v, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, mosaicerrors.New(mosaicerrors.ErrCodeInvalidViewport, "invalid %s %q", name, raw)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch mosaicerrors.GetCode(err) {
	case mosaicerrors.ErrCodeInvalidViewport, mosaicerrors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case mosaicerrors.ErrCodeNotFound, mosaicerrors.ErrCodeItemNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{
		"code":  string(mosaicerrors.GetCode(err)),
		"error": mosaicerrors.UserMessage(err),
	})
}
