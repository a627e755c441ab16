package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"2witter/controllers"
	"2witter/logs"
	"2witter/routes"
	"2witter/store"
	"2witter/utils"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	addr := flag.String("addr", "", "listen address, overrides listen_addr")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	configured, err := cfg.Level()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	level := new(slog.LevelVar)
	level.Set(configured)
	logger, closer, err := logs.New(os.Stderr, level, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Printf("Error closing log file: %v", err)
		}
	}()

	gin.SetMode(cfg.GinMode)
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		gin.DisableConsoleColor()
	}

	hub := controllers.NewHub(logger)
	go hub.RunSocket()

	ctl := controllers.New(store.NewApp(cfg.DefaultPicture), hub, logger)

	r := gin.Default()
	routes.FeedRouter(r, ctl)

	logger.Info("server starting", "addr", cfg.ListenAddr, "default_picture", cfg.DefaultPicture)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
