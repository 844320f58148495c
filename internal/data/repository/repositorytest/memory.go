// Package repositorytest provides in-memory implementations of the
// repository interfaces for tests. They mirror the constraints the real
// tables enforce: unique usernames, unique movie titles, the idempotent
// watchlist pair, the 1-10 rating check and session expiry.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"

	"github.com/google/uuid"
)

// Store bundles the in-memory repositories over one shared dataset.
type Store struct {
	mu       sync.Mutex
	users    []*entity.User
	movies   []*entity.Movie
	reviews  []*entity.Review
	list     []*entity.WatchlistEntry
	sessions []*entity.Session
}

func NewStore() *Store {
	return &Store{}
}

// Repositories returns a repository bundle backed by this store.
func (s *Store) Repositories() *repository.Repository {
	return &repository.Repository{
		User:      &userRepo{store: s},
		Session:   &sessionRepo{store: s},
		Movie:     &movieRepo{store: s},
		Watchlist: &watchlistRepo{store: s},
		Review:    &reviewRepo{store: s},
	}
}

// UserCount reports the number of stored users, for duplicate-registration
// assertions.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// WatchlistCount reports the number of stored watchlist rows.
func (s *Store) WatchlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}

// ---------------- users ----------------

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicate
		}
	}

	copied := *user
	r.store.users = append(r.store.users, &copied)
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	kept := r.store.users[:0]
	for _, user := range r.store.users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	r.store.users = kept

	// Cascade like the real schema does.
	var reviews []*entity.Review
	for _, review := range r.store.reviews {
		if review.UserID != id {
			reviews = append(reviews, review)
		}
	}
	r.store.reviews = reviews

	var list []*entity.WatchlistEntry
	for _, entry := range r.store.list {
		if entry.UserID != id {
			list = append(list, entry)
		}
	}
	r.store.list = list

	var sessions []*entity.Session
	for _, session := range r.store.sessions {
		if session.UserID != id {
			sessions = append(sessions, session)
		}
	}
	r.store.sessions = sessions

	return nil
}

// ---------------- sessions ----------------

type sessionRepo struct {
	store *Store
}

func (r *sessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *session
	r.store.sessions = append(r.store.sessions, &copied)
	return nil
}

func (r *sessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, session := range r.store.sessions {
		if session.Token.String() == token && session.RevokedAt == nil && session.ExpiresAt.After(time.Now()) {
			copied := *session
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *sessionRepo) Revoke(_ context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, session := range r.store.sessions {
		if session.Token.String() == token && session.RevokedAt == nil {
			now := time.Now()
			session.RevokedAt = &now
			return nil
		}
	}
	return nil
}

func (r *sessionRepo) CleanExpiredSessions(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	var kept []*entity.Session
	for _, session := range r.store.sessions {
		if session.ExpiresAt.After(cutoff) {
			kept = append(kept, session)
		}
	}
	r.store.sessions = kept
	return nil
}

// ---------------- movies ----------------

type movieRepo struct {
	store *Store
}

func (r *movieRepo) Upsert(_ context.Context, title string, year *int) (*entity.Movie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, movie := range r.store.movies {
		if movie.Title == title {
			if year != nil {
				movie.Year = year
			}
			movie.UpdatedAt = time.Now()
			copied := *movie
			return &copied, nil
		}
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title: title,
		Year:  year,
	}
	r.store.movies = append(r.store.movies, movie)

	copied := *movie
	return &copied, nil
}

func (r *movieRepo) FindByTitle(_ context.Context, title string) (*entity.Movie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, movie := range r.store.movies {
		if movie.Title == title {
			copied := *movie
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *movieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, movie := range r.store.movies {
		if movie.ID == id {
			copied := *movie
			return &copied, nil
		}
	}
	return nil, nil
}

// ---------------- watchlist ----------------

type watchlistRepo struct {
	store *Store
}

func (r *watchlistRepo) Add(_ context.Context, userID, movieID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, entry := range r.store.list {
		if entry.UserID == userID && entry.MovieID == movieID {
			return nil // ON CONFLICT DO NOTHING
		}
	}

	r.store.list = append(r.store.list, &entity.WatchlistEntry{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		MovieID: movieID,
	})
	return nil
}

func (r *watchlistRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.WatchlistMovie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var movies []*entity.WatchlistMovie
	for _, entry := range r.store.list {
		if entry.UserID != userID {
			continue
		}
		for _, movie := range r.store.movies {
			if movie.ID == entry.MovieID {
				movies = append(movies, &entity.WatchlistMovie{Title: movie.Title, Year: movie.Year})
			}
		}
	}

	sort.Slice(movies, func(i, j int) bool {
		return movies[i].Title < movies[j].Title
	})
	return movies, nil
}

func (r *watchlistRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, entry := range r.store.list {
		if entry.UserID == userID {
			count++
		}
	}
	return count, nil
}

// ---------------- reviews ----------------

type reviewRepo struct {
	store *Store
}

func (r *reviewRepo) Create(_ context.Context, review *entity.Review) error {
	if review.Rating < 1 || review.Rating > 10 {
		return repository.ErrCheckViolation
	}
	if len(review.Body) > 2000 {
		return repository.ErrCheckViolation
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *review
	r.store.reviews = append(r.store.reviews, &copied)
	return nil
}

func (r *reviewRepo) ListByMovie(_ context.Context, movieID uuid.UUID) ([]*entity.MovieReview, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var reviews []*entity.MovieReview
	for _, review := range r.store.reviews {
		if review.MovieID != movieID {
			continue
		}
		for _, user := range r.store.users {
			if user.ID == review.UserID {
				reviews = append(reviews, &entity.MovieReview{
					Username: user.Username,
					Rating:   review.Rating,
					Body:     review.Body,
				})
			}
		}
	}
	return reviews, nil
}

func (r *reviewRepo) ListByUser(_ context.Context, userID uuid.UUID, ascending bool) ([]*entity.AuthoredReview, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var reviews []*entity.AuthoredReview
	for _, review := range r.store.reviews {
		if review.UserID != userID {
			continue
		}
		for _, movie := range r.store.movies {
			if movie.ID == review.MovieID {
				reviews = append(reviews, &entity.AuthoredReview{
					MovieTitle: movie.Title,
					Rating:     review.Rating,
					Body:       review.Body,
				})
			}
		}
	}

	sort.Slice(reviews, func(i, j int) bool {
		if reviews[i].Rating != reviews[j].Rating {
			if ascending {
				return reviews[i].Rating < reviews[j].Rating
			}
			return reviews[i].Rating > reviews[j].Rating
		}
		return reviews[i].MovieTitle < reviews[j].MovieTitle
	})
	return reviews, nil
}

func (r *reviewRepo) TopRatedByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.RatedMovie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	type bucket struct {
		sum   int
		count int64
	}
	byTitle := make(map[string]*bucket)

	for _, review := range r.store.reviews {
		if review.UserID != userID {
			continue
		}
		for _, movie := range r.store.movies {
			if movie.ID == review.MovieID {
				b, ok := byTitle[movie.Title]
				if !ok {
					b = &bucket{}
					byTitle[movie.Title] = b
				}
				b.sum += review.Rating
				b.count++
			}
		}
	}

	var movies []*entity.RatedMovie
	for title, b := range byTitle {
		movies = append(movies, &entity.RatedMovie{
			Title:       title,
			AvgRating:   float64(b.sum) / float64(b.count),
			ReviewCount: b.count,
		})
	}

	sort.Slice(movies, func(i, j int) bool {
		if movies[i].AvgRating != movies[j].AvgRating {
			return movies[i].AvgRating > movies[j].AvgRating
		}
		if movies[i].ReviewCount != movies[j].ReviewCount {
			return movies[i].ReviewCount > movies[j].ReviewCount
		}
		return movies[i].Title < movies[j].Title
	})

	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}
	return movies, nil
}
