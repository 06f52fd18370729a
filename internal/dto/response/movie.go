package response

import (
	"movie-booking/internal/data/entity"
)

type MovieResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	ReleaseDate string   `json:"releaseDate"`
	Showtimes   []string `json:"showtimes"`
	ImgURL      string   `json:"imgUrl"`
}

type DeletedMovieResponse struct {
	DeletedMovie MovieResponse `json:"deletedMovie"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       movie.Genre,
		ReleaseDate: movie.ReleaseDate.Format("2006-01-02"),
		Showtimes:   movie.Showtimes,
		ImgURL:      movie.ImgURL,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
