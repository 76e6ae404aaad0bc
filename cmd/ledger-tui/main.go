package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/mohamedlefliti/projetennaciria/internal/config"
	"github.com/mohamedlefliti/projetennaciria/internal/database"
	"github.com/mohamedlefliti/projetennaciria/internal/export"
	"github.com/mohamedlefliti/projetennaciria/internal/form"
	"github.com/mohamedlefliti/projetennaciria/internal/logger"
	"github.com/mohamedlefliti/projetennaciria/internal/repository"
	"github.com/mohamedlefliti/projetennaciria/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", err)
	}

	// the terminal belongs to the form; console logging would corrupt it
	log, closer, err := logger.New(cfg.Log, io.Discard)
	if err != nil {
		logger.Fatal("init logger", err)
	}
	defer closer.Close()

	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("init database", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate database", err)
	}

	repo := repository.New(db)
	ctl := form.NewController(repo, export.New(repo, cfg.Export.Path, cfg.Export.Sheet), log)

	p := tea.NewProgram(tui.New(context.Background(), ctl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("run terminal form")
		os.Exit(1)
	}
}
