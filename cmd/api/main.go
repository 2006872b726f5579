package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"summarly/api/router"
	"summarly/config"
	"summarly/db"
	_ "summarly/docs" // swag generated package
	"summarly/generator"
	"summarly/logger"
	"summarly/repositories"
	"summarly/services"
	"summarly/summarizer"
	"summarly/task"
)

// @title           Summarly API
// @version         1.0
// @description     API for submitting URLs to be summarized and browsing the results
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		return
	}

	repo := repositories.NewSummaryRepository(db.Database())
	registry := summarizer.NewRegistry(cfg.Summarizer)
	gen := generator.New(repo, registry, cfg.Fetch)
	runner := task.NewRunner(cfg.Tasks.QueueSize, cfg.Tasks.Workers)
	svc := services.NewSummaryService(repo, runner, gen, cfg.Summarizer.DefaultSpecifier)

	r := router.New(svc)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: cors.Default().Handler(r),
	}

	go func() {
		logger.Log.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown: %v", err)
	}

	// drain in-flight generation tasks, best effort
	runner.Close()
}
