package server

import (
	"encoding/json"
	"net/http"

	"delve-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
}

// /debug/state - краткая сводка текущей сессии
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	game := h.Service.Game

	type StateSummary struct {
		Floor       int    `json:"floor"`
		Mode        string `json:"mode"`
		Seed        int64  `json:"seed"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		EntityCount int    `json:"entity_count"`
		PlayerHP    int    `json:"player_hp"`
	}

	writeJSON(w, StateSummary{
		Floor:       game.Floor,
		Mode:        game.Mode.String(),
		Seed:        game.Cfg.Seed,
		Width:       game.Map.Width,
		Height:      game.Map.Height,
		EntityCount: len(game.Map.Entities),
		PlayerHP:    game.Player.Fighter.HP(),
	})
}

// /debug/entities - дамп всех сущностей этажа, включая скрытые от клиента
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	// Чтение без блокировок: движок живет в одной горутине, дамп
	// может быть слегка устаревшим, для дебага этого достаточно
	writeJSON(w, h.Service.Game.Map.Entities)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
