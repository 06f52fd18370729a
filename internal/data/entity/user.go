package entity

import (
	"time"
)

// istLocation is resolved once at startup. Creation times are presented
// to clients in Indian Standard Time.
var istLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

type User struct {
	Numb         int64     `db:"n"`
	Name         string    `db:"name"`
	DateOfBirth  time.Time `db:"date_of_birth"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
}

// CreatedAtIST renders the stored UTC creation time in Indian Standard
// Time. Derived on read, never persisted.
func (u *User) CreatedAtIST() string {
	return u.CreatedAt.In(istLocation).Format("1/2/2006, 3:04:05 PM")
}
