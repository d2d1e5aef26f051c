package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsite/internal/catalog"
	"github.com/kailas-cloud/finsite/internal/config"
	"github.com/kailas-cloud/finsite/internal/db"
	"github.com/kailas-cloud/finsite/internal/db/memory"
	dbRedis "github.com/kailas-cloud/finsite/internal/db/redis"
	logpkg "github.com/kailas-cloud/finsite/internal/logger"
	"github.com/kailas-cloud/finsite/internal/metrics"
	sessionrepo "github.com/kailas-cloud/finsite/internal/repository/session"
	chiTransport "github.com/kailas-cloud/finsite/internal/transport/chi"
	dialogueuc "github.com/kailas-cloud/finsite/internal/usecase/dialogue"
	facetsuc "github.com/kailas-cloud/finsite/internal/usecase/facets"
	handoffuc "github.com/kailas-cloud/finsite/internal/usecase/handoff"
	healthuc "github.com/kailas-cloud/finsite/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/finsite/internal/usecase/recommend"
	searchuc "github.com/kailas-cloud/finsite/internal/usecase/search"
	"github.com/kailas-cloud/finsite/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(version.String())
		return
	}

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting finsite API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("session_driver", cfg.Session.Driver),
	)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	logger.Info("Catalog loaded",
		zap.Int("products", len(cat.Products())),
		zap.Int("resources", len(cat.Resources())),
		zap.Int("taxonomy_nodes", cat.Taxonomy().Len()),
	)

	store, err := newStore(cfg.Session)
	if err != nil {
		logger.Fatal("Failed to create session store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Session.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Session store not ready", zap.Error(err))
	}
	logger.Info("Session store ready", zap.Strings("addrs", cfg.Session.Addrs))

	recorder := metrics.NewRecorder()
	sessions := sessionrepo.New(store, cfg.Session.KeyPrefix, cfg.Session.TTL())

	searchSvc := searchuc.New(cat, recorder, cfg.Search.SuggestLimit)
	facetsSvc := facetsuc.New(sessions, cat)
	resolver := recommenduc.NewResolver(cat.Taxonomy())
	handoffSvc := handoffuc.New(sessions)
	dialogueSvc := dialogueuc.New(sessions, cat, recorder, dialogueuc.Config{
		TypingDelay:  cfg.Dialogue.TypingDelay(),
		SubmitDelay:  cfg.Dialogue.SubmitDelay(),
		VisibleRoles: cfg.Dialogue.VisibleRoles,
	})
	healthSvc := healthuc.New(store, cat)

	server := chiTransport.NewServer(searchSvc, facetsSvc, resolver, handoffSvc, dialogueSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newStore picks the session store backend. redis and valkey share the rueidis driver.
func newStore(cfg config.SessionConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewStore(), nil
	case config.DriverRedis, config.DriverValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("%s store: %w", cfg.Driver, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown session driver %q", cfg.Driver)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", chi.RouteContext(r.Context()).RoutePattern()),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
