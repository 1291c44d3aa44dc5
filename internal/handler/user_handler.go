package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/HilalAksungur/movie-recommender/internal/models"
	"github.com/HilalAksungur/movie-recommender/internal/service"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler { return &UserHandler{svc: s} }

// @Summary Crear usuario
// @Tags users
// @Accept json
// @Produce json
// @Param body body models.UserCreateRequest true "usuario"
// @Success 201 {object} models.UserDoc
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "body inválido (username requerido)", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Create(r.Context(), req.Username)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

// @Summary Obtener usuario por id
// @Tags users
// @Produce json
// @Param id path int true "userId"
// @Success 200 {object} models.UserDoc
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	u, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if u == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(u)
}

// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Param limit query int false "límite (default: 50)"
// @Param offset query int false "offset"
// @Success 200 {array} models.UserDoc
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}

	users, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(users)
}

type watchedRequest struct {
	MovieID int `json:"movieId"`
}

// @Summary Marcar película como vista
// @Tags users
// @Accept json
// @Param id path int true "userId"
// @Param body body watchedRequest true "película vista"
// @Success 204
// @Router /users/{id}/watched [post]
func (h *UserHandler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req watchedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	if err := h.svc.MarkWatched(r.Context(), userID, req.MovieID); err != nil {
		if err == service.ErrUserNotFound {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Historial de películas vistas
// @Tags users
// @Produce json
// @Param id path int true "userId"
// @Success 200 {array} models.WatchedDoc
// @Router /users/{id}/watched [get]
func (h *UserHandler) GetWatched(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	list, err := h.svc.WatchedMovies(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}
