package usecase_test

import (
	"context"
	"testing"

	"moviehub/internal/data/repository/repositorytest"
	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedProfile(t *testing.T, store *repositorytest.Store, userID uuid.UUID) {
	t.Helper()

	repo := store.Repositories()
	watchlist := usecase.NewWatchlistService(repo, zap.NewNop())
	reviews := usecase.NewReviewService(repo, zap.NewNop())

	year := 2014
	require.NoError(t, watchlist.Add(context.Background(), userID, &request.AddMovieRequest{Title: "Interstellar", Year: &year}))
	require.NoError(t, watchlist.Add(context.Background(), userID, &request.AddMovieRequest{Title: "Alien"}))

	require.NoError(t, reviews.Create(context.Background(), userID, &request.CreateReviewRequest{Title: "Interstellar", Rating: 9, Body: "Great"}))
	require.NoError(t, reviews.Create(context.Background(), userID, &request.CreateReviewRequest{Title: "Interstellar", Rating: 7, Body: "Rewatch"}))
	require.NoError(t, reviews.Create(context.Background(), userID, &request.CreateReviewRequest{Title: "Alien", Rating: 8, Body: "Classic"}))
}

func TestProfileService_Overview(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewProfileService(store.Repositories(), zap.NewNop())

	userID := uuid.New()
	seedProfile(t, store, userID)

	resp, err := svc.Overview(context.Background(), userID, "alice", "")
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "desc", resp.Order)

	// Watchlist is alphabetical.
	require.Len(t, resp.Watchlist, 2)
	assert.Equal(t, "Alien", resp.Watchlist[0].Title)
	assert.Equal(t, "Interstellar", resp.Watchlist[1].Title)

	// Reviews default to rating descending.
	require.Len(t, resp.Reviews, 3)
	assert.Equal(t, 9, resp.Reviews[0].Rating)
	assert.Equal(t, 8, resp.Reviews[1].Rating)
	assert.Equal(t, 7, resp.Reviews[2].Rating)

	// Top list aggregates per title: Interstellar avg 8.0 with two reviews,
	// Alien avg 8.0 with one, so review count breaks the tie.
	require.Len(t, resp.Top, 2)
	assert.Equal(t, "Interstellar", resp.Top[0].Title)
	assert.InDelta(t, 8.0, resp.Top[0].AvgRating, 0.001)
	assert.Equal(t, int64(2), resp.Top[0].ReviewCount)
	assert.Equal(t, "Alien", resp.Top[1].Title)
}

func TestProfileService_Overview_Ascending(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewProfileService(store.Repositories(), zap.NewNop())

	userID := uuid.New()
	seedProfile(t, store, userID)

	resp, err := svc.Overview(context.Background(), userID, "alice", "asc")
	require.NoError(t, err)

	assert.Equal(t, "asc", resp.Order)
	require.Len(t, resp.Reviews, 3)
	assert.Equal(t, 7, resp.Reviews[0].Rating)
	assert.Equal(t, 8, resp.Reviews[1].Rating)
	assert.Equal(t, 9, resp.Reviews[2].Rating)
}

func TestProfileService_Overview_UnknownOrderFallsBack(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewProfileService(store.Repositories(), zap.NewNop())

	resp, err := svc.Overview(context.Background(), uuid.New(), "alice", "sideways")
	require.NoError(t, err)
	assert.Equal(t, "desc", resp.Order)
}

func TestProfileService_Overview_EmptyProfile(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewProfileService(store.Repositories(), zap.NewNop())

	resp, err := svc.Overview(context.Background(), uuid.New(), "alice", "desc")
	require.NoError(t, err)

	assert.Empty(t, resp.Watchlist)
	assert.Empty(t, resp.Reviews)
	assert.Empty(t, resp.Top)
}

func TestProfileService_Overview_TopCapsAtTen(t *testing.T) {
	store := repositorytest.NewStore()
	repo := store.Repositories()
	reviews := usecase.NewReviewService(repo, zap.NewNop())
	svc := usecase.NewProfileService(repo, zap.NewNop())

	userID := uuid.New()
	titles := []string{
		"Movie A", "Movie B", "Movie C", "Movie D", "Movie E", "Movie F",
		"Movie G", "Movie H", "Movie I", "Movie J", "Movie K", "Movie L",
	}
	for _, title := range titles {
		require.NoError(t, reviews.Create(context.Background(), userID, &request.CreateReviewRequest{
			Title: title, Rating: 5, Body: "Okay",
		}))
	}

	resp, err := svc.Overview(context.Background(), userID, "alice", "desc")
	require.NoError(t, err)
	assert.Len(t, resp.Top, 10)
}

func TestProfileService_Overview_IsolatedPerUser(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewProfileService(store.Repositories(), zap.NewNop())

	userID := uuid.New()
	seedProfile(t, store, userID)

	resp, err := svc.Overview(context.Background(), uuid.New(), "bob", "desc")
	require.NoError(t, err)

	assert.Empty(t, resp.Watchlist)
	assert.Empty(t, resp.Reviews)
	assert.Empty(t, resp.Top)
}
