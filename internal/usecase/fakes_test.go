package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
)

// In-memory fakes of the repository interfaces. The sequence fake mirrors
// the store-side contract: a single locked read-modify-write per call.

var errStoreDown = errors.New("store unreachable")

type fakeSequenceRepo struct {
	mu     sync.Mutex
	values map[string]int64
	fail   bool
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{values: make(map[string]int64)}
}

func (f *fakeSequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return 0, errStoreDown
	}
	f.values[name]++
	return f.values[name], nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := *user
	f.users[user.Email] = &u
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numb < out[j].Numb })
	return out, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return errors.New("user " + email + " not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[string]*entity.Movie
}

func newFakeMovieRepo(movies ...*entity.Movie) *fakeMovieRepo {
	f := &fakeMovieRepo{movies: make(map[string]*entity.Movie)}
	for _, m := range movies {
		f.movies[m.Title] = m
	}
	return f
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		copied := *m
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMovieRepo) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.movies[title]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeMovieRepo) DeleteByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.movies[title]
	if !ok {
		return nil, nil
	}
	delete(f.movies, title)
	copied := *m
	return &copied, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.Booking
	writes   int
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *booking
	f.bookings = append(f.bookings, &copied)
	f.writes++
	return nil
}

type fakeOTPRepo struct {
	mu    sync.Mutex
	codes map[string]string
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{codes: make(map[string]string)}
}

func (f *fakeOTPRepo) Upsert(ctx context.Context, email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[email] = code
	return nil
}

func (f *fakeOTPRepo) FindByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	code, ok := f.codes[email]
	if !ok {
		return nil, nil
	}
	return &entity.OTP{Email: email, Code: code}, nil
}

// recordCount reports how many live OTP records exist for email. The upsert
// contract allows at most one.
func (f *fakeOTPRepo) recordCount(email string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.codes[email]; ok {
		return 1
	}
	return 0
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeMailer) SendOTP(ctx context.Context, to, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, to+":"+code)
	return nil
}

func newTestRepository() (*repository.Repository, *fakeUserRepo, *fakeMovieRepo, *fakeBookingRepo, *fakeOTPRepo, *fakeSequenceRepo) {
	users := newFakeUserRepo()
	movies := newFakeMovieRepo()
	bookings := &fakeBookingRepo{}
	otps := newFakeOTPRepo()
	seqs := newFakeSequenceRepo()

	repo := &repository.Repository{
		User:     users,
		Movie:    movies,
		Booking:  bookings,
		OTP:      otps,
		Sequence: seqs,
	}
	return repo, users, movies, bookings, otps, seqs
}
