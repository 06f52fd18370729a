package entity

import (
	"time"
)

type Movie struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Genre       string    `db:"genre"`
	ReleaseDate time.Time `db:"release_date"`
	Showtimes   []string  `db:"showtimes"`
	ImgURL      string    `db:"img_url"`
}
