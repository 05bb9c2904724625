package server

import (
	"encoding/json"
	"net/http"

	"dungeon-arena/internal/engine"
	"dungeon-arena/internal/network"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/gorilla/mux"
)

// DebugHandler предоставляет доступ к последнему опубликованному состоянию.
// Сам мир принадлежит горутине Runner, сюда попадают только копии.
type DebugHandler struct {
	Runner *engine.Runner
	Hub    *network.Broadcaster
}

func NewDebugHandler(r *engine.Runner, hub *network.Broadcaster) *DebugHandler {
	return &DebugHandler{Runner: r, Hub: hub}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/debug/state", h.handleState).Methods(http.MethodGet)
	r.HandleFunc("/debug/grid", h.handleGrid).Methods(http.MethodGet)
	r.HandleFunc("/debug/progression", h.handleProgression).Methods(http.MethodGet)
	r.HandleFunc("/debug/hub", h.handleHub).Methods(http.MethodGet)
}

// /debug/state - последний снапшот целиком (без сетки)
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	s := h.Runner.Latest()
	if s == nil {
		http.Error(w, "No snapshot yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, s)
}

// /debug/grid - сетка текущего этапа
func (h *DebugHandler) handleGrid(w http.ResponseWriter, r *http.Request) {
	g := h.Runner.LatestGrid()
	if g == nil {
		http.Error(w, "Grid not generated", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, g)
}

// /debug/progression - очки, этап, сложность и таймеры босса
func (h *DebugHandler) handleProgression(w http.ResponseWriter, r *http.Request) {
	s := h.Runner.Latest()
	if s == nil {
		http.Error(w, "No snapshot yet", http.StatusServiceUnavailable)
		return
	}

	type ProgressionDump struct {
		RunID    string           `json:"run_id"`
		Tick     uint64           `json:"tick"`
		Over     bool             `json:"over"`
		Enemies  int              `json:"enemies"`
		Progress api.ProgressView `json:"progress"`
	}

	writeJSON(w, ProgressionDump{
		RunID:    s.RunID,
		Tick:     s.Tick,
		Over:     s.Over,
		Enemies:  len(s.Enemies),
		Progress: s.Progress,
	})
}

// /debug/hub - зрители и пропущенные кадры
func (h *DebugHandler) handleHub(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"subscribers": h.Hub.SubscriberCount(),
		"dropped":     h.Hub.Dropped(),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, пустая таблица), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("failed to encode debug response")
	}
}
