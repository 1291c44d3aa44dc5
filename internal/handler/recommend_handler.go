package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/HilalAksungur/movie-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

func recRequestFromQuery(r *http.Request) service.RecRequest {
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	strategy := r.URL.Query().Get("strategy")
	refresh := r.URL.Query().Get("refresh") == "true"
	return service.RecRequest{
		K:        k,
		Strategy: strategy,
		Refresh:  refresh,
	}
}

// @Summary Recomendaciones para un usuario
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param strategy query string false "knn|cluster (default: knn)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecMovie
// @Failure 404 {string} string "usuario no encontrado"
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req := recRequestFromQuery(r)
	req.UserID, _ = strconv.Atoi(chi.URLParam(r, "id"))

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Recomendaciones cold-start (usuario sin historial)
// @Tags recommend
// @Produce json
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param strategy query string false "knn|cluster (default: knn)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecMovie
// @Router /recommendations/new [get]
func (h *RecommendHandler) GetNewUserRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req := recRequestFromQuery(r)
	req.NewUser = true

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Historial de recomendaciones servidas a un usuario
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "máximo de entradas (default: 20)"
// @Success 200 {array} models.Recommendation
// @Router /users/{id}/recommendations/history [get]
func (h *RecommendHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if limit <= 0 {
		limit = 20
	}

	hist, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(hist)
}

type trainRequest struct {
	K int `json:"k"`
}

// @Summary Reentrenar el modelo de clusters
// @Tags recommend
// @Accept json
// @Param body body trainRequest false "cantidad de clusters (default: 3)"
// @Success 204
// @Failure 422 {string} string "datos insuficientes"
// @Router /recommender/train [post]
func (h *RecommendHandler) Train(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req trainRequest
	if r.Body != nil {
		// body opcional: sin body entrena con el k por defecto
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if err := h.svc.Train(r.Context(), req.K); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param strategy query string false "knn|cluster (default: knn)"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	req := recRequestFromQuery(r)
	req.UserID, _ = strconv.Atoi(chi.URLParam(r, "id"))
	// por WS siempre recalculamos
	req.Refresh = true

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando cálculo…",
	})

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      req.UserID,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
