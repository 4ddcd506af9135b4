package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type HTTPServer struct {
	logs            *zap.SugaredLogger
	server          *http.Server
	port            string
	shutdownTimeout time.Duration
	listen          func(network, address string) (net.Listener, error)
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		port:            port,
		shutdownTimeout: shutdownTimeout,
		listen:          net.Listen,
	}
}

// Listen binds the configured port. When the port is already taken it falls
// back to an ephemeral port chosen by the OS.
func (s *HTTPServer) Listen() (net.Listener, error) {
	ln, err := s.listen("tcp", ":"+s.port)
	if err == nil {
		return ln, nil
	}
	if !errors.Is(err, syscall.EADDRINUSE) {
		return nil, fmt.Errorf("listen on port %s: %w", s.port, err)
	}

	s.logs.Warnw("port is in use, trying another port", "port", s.port)

	ln, err = s.listen("tcp", ":0")
	if err != nil {
		return nil, fmt.Errorf("listen on ephemeral port: %w", err)
	}
	return ln, nil
}

// Run starts serving in the background. The returned channel receives the
// error that stopped the server, http.ErrServerClosed after a shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	ln, err := s.Listen()
	if err != nil {
		errChan <- err
		return errChan
	}

	s.logs.Infow("your app is listening", "address", ln.Addr().String())

	go func() {
		errChan <- s.server.Serve(ln)
	}()

	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
