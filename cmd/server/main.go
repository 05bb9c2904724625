package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"dungeon-arena/internal/agent"
	"dungeon-arena/internal/engine"
	"dungeon-arena/internal/hosts/launch"
	"dungeon-arena/internal/network"
	"dungeon-arena/internal/server"
	"dungeon-arena/internal/version"
	"dungeon-arena/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	opts := launch.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger.Log.Info("Starting Dungeon Arena server...")
	logger.Log.Info(version.String())

	cfg, err := opts.Config()
	if err != nil {
		logger.Log.Fatal("Invalid config: ", err)
	}

	// РЕЖИМ РЕПЛЕЯ
	if opts.Replaying() {
		logger.Log.Info("💿 Mode: Replay Simulation")
		if _, err := opts.RunReplay(cfg); err != nil {
			logger.Log.Fatal("Replay failed: ", err)
		}
		return // Выходим после симуляции
	}

	logger.Log.Infof("🎲 Using Master Seed: %d", cfg.Seed)
	port := launch.Env(launch.EnvPort, launch.DefaultPort)

	// 2. Ядро: игра под управлением бота, лента для зрителей
	board := launch.Leaderboard()
	game, err := opts.NewGame(cfg, board)
	if err != nil {
		logger.Log.Fatal("Failed to build game: ", err)
	}

	hub := network.NewBroadcaster()
	runner := engine.NewRunner(game, agent.NewBot(cfg.Seed), hub)

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Цикл симуляции и сервер живут вместе: ошибка одного гасит другого
	srv := server.New(runner, hub, board, port)
	srv.Profiling = launch.Enabled(launch.EnvPprof)
	err = launch.Supervise(ctx, runner.Run, srv.Run)

	logger.Log.Info("Shutting down...")
	// Оба остановлены, игру никто не трогает
	opts.SaveRecording(game)

	if err != nil {
		logger.Log.Fatal("Stopped with error: ", err)
	}
	logger.Log.Info("Done.")
}
