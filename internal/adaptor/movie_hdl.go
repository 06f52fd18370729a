package adaptor

import (
	"errors"
	"net/http"

	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// FetchMovies handles GET /auth/fetchmovies
func (h *MovieHandler) FetchMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.FetchMovies(r.Context())
	if err != nil {
		h.log.Error("Failed to fetch movies", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, movies)
}

// DeleteMovie handles DELETE /auth/delete/{title}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if title == "" {
		utils.ResponseBadRequest(w, "Missing movie title", nil)
		return
	}

	deleted, err := h.service.DeleteMovie(r.Context(), title)
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			utils.ResponseNotFound(w, "Movie not found")
			return
		}
		h.log.Error("Failed to delete movie", zap.Error(err), zap.String("title", title))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, response.DeletedMovieResponse{DeletedMovie: *deleted})
}
