// Package server exposes the command registry and the settings-editor
// protocol to editor front-ends over HTTP and WebSocket. It binds to the
// loopback interface by default since every invocation runs a shell command.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/hbjs97/actions/internal/registry"
	"github.com/hbjs97/actions/internal/settings"
	"github.com/rs/zerolog"
)

// DefaultAddr는 기본 listen 주소다.
const DefaultAddr = "127.0.0.1:7777"

// Config는 서버 설정이다.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	// AllowedOrigins는 CORS와 WebSocket에서 허용할 브라우저 origin이다 (예: vscode-webview://*).
	// 비어 있으면 같은 host의 요청만 허용한다.
	AllowedOrigins []string
}

// DefaultConfig는 기본 서버 설정을 반환한다.
func DefaultConfig() Config {
	return Config{
		Addr:            DefaultAddr,
		ReadTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server는 actions HTTP 서버다.
type Server struct {
	cfg      Config
	router   *chi.Mux
	registry *registry.Registry
	editor   *settings.Editor
	logger   zerolog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// New는 Server를 생성하고 라우트를 구성한다.
func New(cfg Config, reg *registry.Registry, editor *settings.Editor, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		registry: reg,
		editor:   editor,
		logger:   logger,
		clients:  make(map[*client]struct{}),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestLogger)

	if len(s.cfg.AllowedOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireOrigin)
		r.Get("/actions", s.listActions)
		r.Get("/commands", s.listCommands)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/commands/{commandID}", s.invokeCommand)
			r.Post("/settings", s.settingsMessage)
		})
	})

	r.Get("/ws", s.serveWS)
}

// requireOrigin은 같은 호스트나 AllowedOrigins에 없는 Origin의 요청을 403으로 거절한다.
func (s *Server) requireOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.checkOrigin(r) {
			s.logger.Warn().Str("origin", r.Header.Get("Origin")).Str("path", r.URL.Path).Msg("허용되지 않은 origin")
			writeError(w, http.StatusForbidden, "FORBIDDEN_ORIGIN", "허용되지 않은 origin입니다")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger는 요청마다 zerolog로 한 줄을 남긴다.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("http")
	})
}

// Handler는 테스트용 http.Handler다.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe는 ctx가 끝날 때까지 서버를 실행하고, 끝나면 graceful shutdown한다.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("서버 시작")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server.ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.closeClients()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	s.logger.Info().Msg("서버 종료")
	return nil
}
