package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/pprof"
	"strconv"
	"time"

	"dungeon-arena/internal/engine"
	"dungeon-arena/internal/infrastructure/storage"
	"dungeon-arena/internal/network"
	"dungeon-arena/internal/version"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Server раздаёт ленту снапшотов зрителям и служебные эндпоинты.
type Server struct {
	Runner *engine.Runner
	Hub    *network.Broadcaster
	// Board может быть nil: тогда /leaderboard отдаёт пустую таблицу.
	Board *storage.Leaderboard
	Port  string
	// Profiling открывает /debug/pprof/. По умолчанию выключено:
	// порт зрителей публичный.
	Profiling bool
}

func New(runner *engine.Runner, hub *network.Broadcaster, board *storage.Leaderboard, port string) *Server {
	return &Server{
		Runner: runner,
		Hub:    hub,
		Board:  board,
		Port:   port,
	}
}

// Handler собирает роутер. Вынесен отдельно для httptest.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", s.handleLeaderboard).Methods(http.MethodGet)

	NewDebugHandler(s.Runner, s.Hub).RegisterRoutes(r)

	if s.Profiling {
		registerPprof(r)
	}
	return r
}

// Run запускает HTTP сервер и гасит его по отмене ctx
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("Dungeon Arena spectator feed running on :%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// registerPprof вешает профилировщик на роутер явно, мимо DefaultServeMux.
func registerPprof(r *mux.Router) {
	p := r.PathPrefix("/debug/pprof").Subrouter()
	p.HandleFunc("/cmdline", pprof.Cmdline)
	p.HandleFunc("/profile", pprof.Profile)
	p.HandleFunc("/symbol", pprof.Symbol)
	p.HandleFunc("/trace", pprof.Trace)
	p.PathPrefix("/").HandlerFunc(pprof.Index)
	logger.Log.Warn("pprof endpoints enabled on /debug/pprof/")
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		// Разрешаем заголовки, если фронт шлет что-то нестандартное
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next.ServeHTTP(w, r)
	})
}

// streamOptions разбирает ?format=json|msgpack&every=N
func streamOptions(r *http.Request) (api.StreamOptions, error) {
	q := r.URL.Query()
	opts := api.StreamOptions{Format: api.FormatJSON, Every: 1}

	if f := q.Get("format"); f != "" {
		opts.Format = f
	}
	if e := q.Get("every"); e != "" {
		n, err := strconv.Atoi(e)
		if err != nil {
			return opts, errors.New("every must be an integer")
		}
		opts.Every = n
	}
	return opts, opts.Validate()
}

// handleWS обрабатывает подключение зрителя по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	opts, err := streamOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Runner, s.Hub, conn, opts)
	client.log.Info("Spectator connected")

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := []storage.Entry{}
	if s.Board != nil {
		loaded, err := s.Board.Load()
		if err != nil {
			logger.Log.WithError(err).Error("Failed to load leaderboard")
			http.Error(w, "leaderboard unavailable", http.StatusInternalServerError)
			return
		}
		if loaded != nil {
			entries = loaded
		}
	}
	writeJSON(w, entries)
}
