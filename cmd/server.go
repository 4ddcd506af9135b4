package cmd

import (
	"exercisetracker/internal/config"
	"exercisetracker/internal/core"
	"exercisetracker/internal/db"
	"exercisetracker/internal/http/handler"
	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/http/payload"
	"exercisetracker/internal/http/server"
	"exercisetracker/internal/observability"
	"exercisetracker/internal/repository"
	"exercisetracker/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	config, err := config.NewAppConfig()
	if err != nil {
		log.NewZapLogger("exercise-tracker", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("exercise-tracker", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL, config.DBLogLevel)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTrackerRepository(dbConn)

	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// tracker
	tracker := core.NewTracker(logger, repo)

	// handler
	trackerHlr := handler.NewTrackerHandler(
		logger,
		payload.Decoder{},
		tracker)

	metrics := observability.NewHTTPMetrics(prometheus.DefaultRegisterer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger, metrics).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware(config.CORSAllowedOrigins).CORS(hdlr)

	// register routes
	trackerHlr.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle(handler.Index, handler.NewStaticHandler(config.ViewsDir, config.StaticDir))

	srv := server.NewHTTP(logger, hdlr, config.Port, config.ShutdownTimeout)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
