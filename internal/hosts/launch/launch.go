// Package launch - общая обвязка cmd/*: флаги, переменные окружения,
// конфиг, таблица рекордов, запись и проигрывание реплеев.
package launch

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dungeon-arena/internal/engine"
	"dungeon-arena/internal/infrastructure/storage"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Переменные окружения
const (
	EnvPort        = "DA_PORT"
	EnvConfig      = "DA_CONFIG"
	EnvLeaderboard = "DA_LEADERBOARD"
	EnvPprof       = "DA_PPROF"

	DefaultPort        = "8080"
	DefaultLeaderboard = "leaderboard.txt"
)

// Options - флаги, общие для всех хостов.
type Options struct {
	Seed       int64
	ConfigPath string
	Name       string
	RecordDir  string
	ReplayPath string
}

// RegisterFlags объявляет -seed -config -name -record -replay.
func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.Int64Var(&o.Seed, "seed", 0, "World seed (0 for random)")
	fs.StringVar(&o.ConfigPath, "config", "", "Path to YAML config (default $"+EnvConfig+")")
	fs.StringVar(&o.Name, "name", "", "Player name for the leaderboard")
	fs.StringVar(&o.RecordDir, "record", "", "Directory to save the run replay into on exit")
	fs.StringVar(&o.ReplayPath, "replay", "", "Path to .dsrp replay file to re-simulate")
	return o
}

// Env возвращает переменную окружения или fallback.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Enabled - true, если переменная окружения задана как 1/true/yes/on.
func Enabled(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Config собирает конфиг: файл (флаг, затем DA_CONFIG), поверх него флаги.
func (o *Options) Config() (engine.Config, error) {
	cfg := engine.NewConfig()

	path := o.ConfigPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		loaded, err := engine.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	if o.Name != "" {
		cfg.PlayerName = storage.SanitizeName(o.Name)
	}
	return cfg, cfg.Validate()
}

// Leaderboard - таблица рекордов из DA_LEADERBOARD.
func Leaderboard() *storage.Leaderboard {
	return storage.NewLeaderboard(Env(EnvLeaderboard, DefaultLeaderboard))
}

// NewGame создает игру с записью результата в таблицу рекордов.
func (o *Options) NewGame(cfg engine.Config, board *storage.Leaderboard) (*engine.Game, error) {
	var opts []engine.Option
	if board != nil {
		opts = append(opts, engine.WithRecorder(board))
	}
	if o.RecordDir != "" {
		opts = append(opts, engine.WithRecording())
	}
	g, err := engine.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"seed":    cfg.Seed,
		"player":  cfg.PlayerName,
		"run_id":  g.RunID().String(),
		"records": o.RecordDir != "",
	}).Info("Run configured")
	return g, nil
}

// Replaying - true, если задан -replay.
func (o *Options) Replaying() bool { return o.ReplayPath != "" }

// RunReplay загружает реплей и прогоняет его без отрисовки.
func (o *Options) RunReplay(cfg engine.Config) (*engine.Game, error) {
	svc := storage.NewReplayService(filepath.Dir(o.ReplayPath))
	session, err := svc.Load(o.ReplayPath)
	if err != nil {
		return nil, fmt.Errorf("load replay: %w", err)
	}

	g, err := engine.Replay(cfg, session)
	if err != nil {
		return g, err
	}

	p := g.Progress()
	logger.Log.WithFields(logrus.Fields{
		"run_id": session.RunID,
		"seed":   session.Seed,
		"player": session.PlayerName,
		"ticks":  session.Ticks(),
		"score":  p.Final(),
		"stage":  p.Stage,
		"over":   g.Over(),
	}).Info("Replay simulated")
	return g, nil
}

// SaveRecording сохраняет реплей, если задан -record. Ошибка только логируется:
// запись не должна ронять хост на выходе.
func (o *Options) SaveRecording(g *engine.Game) string {
	if o.RecordDir == "" || g == nil || g.Replay() == nil {
		return ""
	}
	path, err := storage.NewReplayService(o.RecordDir).Save(g.Replay())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to save replay")
		return ""
	}
	logger.Log.WithField("path", path).Info("Replay saved")
	return path
}
