package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-safearea/internal/config"
	"github.com/grindlemire/go-safearea/internal/errors"
	"github.com/grindlemire/go-safearea/internal/host"
	"github.com/grindlemire/go-safearea/internal/resolution"
	"github.com/grindlemire/go-safearea/internal/safearea"
	"github.com/grindlemire/go-safearea/internal/snapshotfmt"
)

const shutdownTimeout = 5 * time.Second

var contentTypes = map[snapshotfmt.Format]string{
	snapshotfmt.JSON:    "application/json",
	snapshotfmt.YAML:    "application/yaml",
	snapshotfmt.TOML:    "application/toml",
	snapshotfmt.MsgPack: "application/msgpack",
}

type serveOptions struct {
	addr       string
	configPath string
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resolve and snapshot over HTTP",
		Long: `Serve exposes the engine over HTTP:

  GET /healthz
  GET /v1/resolve?design=1080x1920&display=1170x2532&mode=auto&epsilon=0.01
  GET /v1/snapshot?display=1170x2532&insets=90,0,34,0&format=json

Every request computes from scratch against the loaded configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := config.Default()
			if opts.configPath != "" {
				loaded, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return serve(cmd.Context(), opts.addr, newRouter(cfg, logger), logger)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "safe-area config file (.toml, .yaml)")

	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "listen on %s", addr)
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("serving", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type api struct {
	cfg    config.Config
	logger *log.Logger
}

func newRouter(cfg config.Config, logger *log.Logger) http.Handler {
	a := &api{cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	r.Get("/healthz", a.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/resolve", a.handleResolve)
		r.Get("/snapshot", a.handleSnapshot)
	})
	return r
}

func (a *api) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}

func (a *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version})
}

func (a *api) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	design, err := parseSize(queryOr(q.Get("design"), "1080x1920"))
	if err != nil {
		writeError(w, err)
		return
	}
	display, err := parseSize(q.Get("display"))
	if err != nil {
		writeError(w, err)
		return
	}
	mode, err := resolution.ParseMode(queryOr(q.Get("mode"), "auto"))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "mode"))
		return
	}
	var epsilon float64
	if s := q.Get("epsilon"); s != "" {
		if epsilon, err = strconv.ParseFloat(s, 64); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "epsilon %q", s))
			return
		}
	}

	info := resolution.Resolve(design, display, resolution.Options{Mode: mode, Epsilon: epsilon})
	writeJSON(w, http.StatusOK, newResolveResult(info))
}

func (a *api) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format, err := snapshotfmt.ParseFormat(queryOr(q.Get("format"), "json"))
	if err != nil {
		writeError(w, err)
		return
	}
	display, err := parseSize(q.Get("display"))
	if err != nil {
		writeError(w, err)
		return
	}
	insets, err := parseInsets(q.Get("insets"))
	if err != nil {
		writeError(w, err)
		return
	}

	sim := host.NewSim(display.Width, display.Height)
	sim.SetInsets(insets)
	m, err := safearea.NewManager(sim, a.cfg.Manager(), safearea.WithLogger(a.logger))
	if err != nil {
		writeError(w, err)
		return
	}
	defer m.Destroy()

	w.Header().Set("Content-Type", contentTypes[format])
	if err := snapshotfmt.Encode(w, format, m.Snapshot()); err != nil {
		a.logger.Error("encode snapshot", "err", err)
	}
}

func queryOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{
		"code":  string(errors.GetCode(err)),
		"error": errors.UserMessage(err),
	})
}
