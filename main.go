package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mohamedlefliti/projetennaciria/internal/config"
	"github.com/mohamedlefliti/projetennaciria/internal/database"
	"github.com/mohamedlefliti/projetennaciria/internal/export"
	"github.com/mohamedlefliti/projetennaciria/internal/form"
	"github.com/mohamedlefliti/projetennaciria/internal/logger"
	"github.com/mohamedlefliti/projetennaciria/internal/repository"
	"github.com/mohamedlefliti/projetennaciria/internal/router"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	// load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", err)
	}

	log, closer, err := logger.New(cfg.Log, os.Stdout)
	if err != nil {
		logger.Fatal("init logger", err)
	}
	defer closer.Close()

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("init database")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	repo := repository.New(db)
	ctl := form.NewController(repo, export.New(repo, cfg.Export.Path, cfg.Export.Sheet), log)
	if err := ctl.Reload(context.Background()); err != nil {
		// the form stays usable; the next action retries the read
		log.Error().Err(err).Msg("initial load")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupRouter(cfg, ctl, repo, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("db", cfg.Database.Path).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("run server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
