package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Get("/fetchmovies", movieHandler.FetchMovies)
	r.Delete("/delete/{title}", movieHandler.DeleteMovie)
}
