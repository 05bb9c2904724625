package main

import (
	"flag"

	"dungeon-arena/internal/audio"
	"dungeon-arena/internal/hosts/launch"
	"dungeon-arena/internal/hosts/window"
	"dungeon-arena/internal/version"
	"dungeon-arena/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	opts := launch.RegisterFlags(flag.CommandLine)
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	logger.Log.Info("Starting Dungeon Arena...")
	logger.Log.Info(version.String())

	cfg, err := opts.Config()
	if err != nil {
		logger.Log.Fatal("Invalid config: ", err)
	}

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

	// Без звуковой карты играем молча
	sound := audio.NewPlayer()
	if err := sound.Init(); err != nil {
		logger.Log.WithError(err).Warn("Audio disabled")
	}
	sound.SetMuted(*mute)
	defer sound.Close()

	if err := window.Run(window.New(game, sound), "Dungeon Arena"); err != nil {
		logger.Log.Error("Window host error: ", err)
	}
	opts.SaveRecording(game)
}
