package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"dungeon-arena/internal/audio"
	"dungeon-arena/internal/hosts/launch"
	"dungeon-arena/internal/hosts/terminal"
	"dungeon-arena/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

func init() {
	logger.Init()
}

func main() {
	opts := launch.RegisterFlags(flag.CommandLine)
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	cfg, err := opts.Config()
	if err != nil {
		logger.Log.Fatal("Invalid config: ", err)
	}

	// Реплей печатает итог в лог, экран не нужен
	if opts.Replaying() {
		if _, err := opts.RunReplay(cfg); err != nil {
			logger.Log.Fatal("Replay failed: ", err)
		}
		return
	}

	game, err := opts.NewGame(cfg, launch.Leaderboard())
	if err != nil {
		logger.Log.Fatal("Failed to build game: ", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.Fatal("Failed to create screen: ", err)
	}
	if err := screen.Init(); err != nil {
		logger.Log.Fatal("Failed to init screen: ", err)
	}
	// Экран занят картой, дальше логи только в LOG_FILE
	logger.Quiet()

	sound := audio.NewPlayer()
	if err := sound.Init(); err != nil {
		logger.Log.WithError(err).Warn("Audio disabled")
	}
	sound.SetMuted(*mute)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := terminal.New(screen, game, sound).Run(ctx)
	stop()

	screen.Fini()
	sound.Close()
	// Экран освобождён, возвращаем логи в stdout
	logger.Init()

	opts.SaveRecording(game)
	if runErr != nil {
		logger.Log.Fatal("Terminal host error: ", runErr)
	}
}
