package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/AirHelp/numstats/errorhandler"
	"github.com/AirHelp/numstats/handler"
	"github.com/AirHelp/numstats/metrics"
	"github.com/AirHelp/numstats/stat"
)

const (
	metricsPath = "/metrics"

	readHeaderTimeout      = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Address         string
	MetricsAddress  string
	ShutdownTimeout time.Duration

	Handler *handler.StatisticsHandler
	Metrics *metrics.Metrics
}

type Server struct {
	router          *echo.Echo
	api             *http.Server
	metrics         *http.Server
	shutdownTimeout time.Duration
}

func New(config Config) *Server {
	s := &Server{
		router:          NewRouter(config.Handler, config.Metrics),
		shutdownTimeout: config.ShutdownTimeout,
	}

	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}

	s.api = &http.Server{
		Addr:              config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if config.Metrics != nil && config.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle(metricsPath, config.Metrics.HTTPHandler())

		s.metrics = &http.Server{
			Addr:              config.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	return s
}

// NewRouter registers one GET route per operation. Metrics may be nil.
func NewRouter(h *handler.StatisticsHandler, m *metrics.Metrics) *echo.Echo {
	if h == nil {
		h = handler.NewStatistics(handler.Config{})
	}

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = errorhandler.HTTPErrorHandler
	router.Logger.SetOutput(io.Discard)

	router.Use(accessLog())

	if m != nil {
		router.Use(m.Middleware())
	}

	router.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			zap.L().Error("recovered from panic", zap.Error(err), zap.ByteString("stack", stack))
			return err
		},
	}))

	for _, op := range stat.Operations() {
		router.GET("/"+string(op), h.Handler(op))
	}

	return router
}

// Run listens on the configured addresses and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	apiListener, err := net.Listen("tcp", s.api.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %v: %w", s.api.Addr, err)
	}

	var metricsListener net.Listener

	if s.metrics != nil {
		metricsListener, err = net.Listen("tcp", s.metrics.Addr)
		if err != nil {
			apiListener.Close()
			return fmt.Errorf("failed to listen on %v: %w", s.metrics.Addr, err)
		}
	}

	return s.Serve(ctx, apiListener, metricsListener)
}

// Serve serves on the given listeners until ctx is done or one of them
// fails, then shuts both servers down. metricsListener is ignored when
// metrics are disabled.
func (s *Server) Serve(ctx context.Context, apiListener, metricsListener net.Listener) error {
	errChan := make(chan error, 2)

	serve := func(name string, srv *http.Server, ln net.Listener) {
		zap.S().Infof("%v server listening on %v", name, ln.Addr())

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("%v server: %w", name, err)
		}
	}

	go serve("api", s.api, apiListener)

	if s.metrics != nil && metricsListener != nil {
		go serve("metrics", s.metrics, metricsListener)
	}

	var serveErr error

	select {
	case <-ctx.Done():
		zap.S().Info("shutting down servers")
	case serveErr = <-errChan:
		zap.S().Errorf("server failed, shutting down: %v", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return errors.Join(serveErr, s.shutdown(shutdownCtx))
}

func (s *Server) shutdown(ctx context.Context) error {
	var errs []error

	if err := s.api.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("api server shutdown: %w", err))
	}

	if s.metrics != nil {
		if err := s.metrics.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}
