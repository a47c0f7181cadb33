package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/lumen/pkg/api"
	"github.com/cbodonnell/lumen/pkg/config"
	"github.com/cbodonnell/lumen/pkg/game"
	"github.com/cbodonnell/lumen/pkg/game/types"
	"github.com/cbodonnell/lumen/pkg/log"
	"github.com/cbodonnell/lumen/pkg/network"
	"github.com/cbodonnell/lumen/pkg/queue"
	"github.com/cbodonnell/lumen/pkg/skin"
	"github.com/cbodonnell/lumen/pkg/snapshot"
	"github.com/cbodonnell/lumen/pkg/version"
	"github.com/cbodonnell/lumen/pkg/world"
)

const skinTextureID world.TextureID = "skins/local"

func main() {
	configPath := flag.String("config", os.Getenv("LUMEN_CONFIG"), "Path to a YAML config file")
	port := flag.Int("port", 0, "Port to listen on")
	logLevel := flag.String("log-level", "", "Log level")
	skinFile := flag.String("skin", "", "PNG skin of the local player")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "log-level":
			cfg.LogLevel = *logLevel
		case "skin":
			cfg.Player.SkinFile = *skinFile
		}
	})
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting lumen sync version %s", version.Get())

	// validated above
	skinFormat, _ := skin.ParseFormat(cfg.SkinFormat)
	gameMode, _ := types.ParseGameMode(cfg.Player.GameMode)

	memory := world.NewMemory()
	memory.SetGameMode(gameMode)
	var playerSkin world.TextureID
	if cfg.Player.SkinFile != "" {
		if err := memory.LoadSkinFile(skinTextureID, cfg.Player.SkinFile); err != nil {
			log.Warn("Serving no skin: %v", err)
		} else {
			playerSkin = skinTextureID
		}
	}
	memory.SetPlayer(world.NewMemoryPlayer(cfg.Player.Health, cfg.Player.MaxHealth, playerSkin))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := game.NewLoop(game.NewLoopOptions{
		TaskQueue:    queue.NewInMemoryTaskQueue(cfg.QueueSize),
		TickInterval: cfg.TickInterval,
	})
	go func() {
		if err := loop.Start(ctx); err != nil {
			log.Error("Game loop error: %v", err)
		}
	}()

	stats := &snapshot.Stats{}
	coordinator := snapshot.NewCoordinator(snapshot.NewCoordinatorOptions{
		Executor:   loop,
		Client:     memory,
		Textures:   memory,
		Timeout:    cfg.SnapshotTimeout,
		SkinFormat: skinFormat,
		Observer:   stats,
	})

	bindAddress := net.ParseIP(cfg.BindAddress)
	if bindAddress == nil {
		bindAddress = network.ResolveBindAddress(network.SystemInterfaces{})
	}

	server, err := api.NewAPIServer(api.NewAPIServerOptions{
		BindAddress:     bindAddress,
		Port:            cfg.Port,
		MaxConnections:  cfg.MaxConnections,
		SnapshotTimeout: cfg.SnapshotTimeout,
		Snapshots:       coordinator,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create API server: %v", err))
	}
	go server.Start()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
	log.Debug("Degraded snapshots by stage: %v", stats.Counts())
}
