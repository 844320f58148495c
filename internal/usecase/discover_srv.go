package usecase

import (
	"context"

	"moviehub/internal/dto/response"
	"moviehub/pkg/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CatalogClient is the slice of the catalog API the discovery flow needs.
type CatalogClient interface {
	Configured() bool
	Search(ctx context.Context, title string) ([]catalog.Movie, error)
	ByTitle(ctx context.Context, title string) (*catalog.Movie, error)
}

type DiscoverService interface {
	// Discover never fails the request: catalog problems degrade to empty
	// lists with an explanatory notice.
	Discover(ctx context.Context, query string) *response.DiscoverResponse
}

const (
	noticeNotConfigured = "Movie search is not configured. Set OMDB_API_KEY to enable discovery."
	noticeUnavailable   = "The movie catalog is unavailable right now. Please try again later."
)

// Curated discovery content. Illustrative picks, not a ranking algorithm.
var popularSearches = []string{
	"star wars",
	"batman",
	"avengers",
	"matrix",
}

var topTenTitles = []string{
	"The Shawshank Redemption",
	"The Godfather",
	"The Dark Knight",
	"12 Angry Men",
	"Schindler's List",
	"The Lord of the Rings: The Return of the King",
	"Pulp Fiction",
	"Inception",
	"Fight Club",
	"Forrest Gump",
}

type discoverService struct {
	cat CatalogClient
	log *zap.Logger
}

func NewDiscoverService(cat CatalogClient, log *zap.Logger) DiscoverService {
	return &discoverService{
		cat: cat,
		log: log,
	}
}

func (s *discoverService) Discover(ctx context.Context, query string) *response.DiscoverResponse {
	resp := &response.DiscoverResponse{Query: query}

	if !s.cat.Configured() {
		resp.Notice = noticeNotConfigured
		return resp
	}

	if query != "" {
		s.search(ctx, query, resp)
		return resp
	}

	s.curated(ctx, resp)
	return resp
}

func (s *discoverService) search(ctx context.Context, query string, resp *response.DiscoverResponse) {
	movies, err := s.cat.Search(ctx, query)
	if err != nil {
		s.log.Warn("Catalog search failed", zap.Error(err), zap.String("query", query))
		resp.Notice = noticeUnavailable
		return
	}

	resp.Results = make([]response.MovieCard, 0, len(movies))
	for _, movie := range movies {
		resp.Results = append(resp.Results, response.CatalogToCard(movie))
	}
}

// curated assembles the landing lists: popular picks deduplicated by catalog
// id, and the fixed top-10 fetched by title with its curated order preserved.
func (s *discoverService) curated(ctx context.Context, resp *response.DiscoverResponse) {
	seen := make(map[string]bool)
	for _, term := range popularSearches {
		movies, err := s.cat.Search(ctx, term)
		if err != nil {
			s.log.Warn("Catalog popular lookup failed", zap.Error(err), zap.String("term", term))
			resp.Notice = noticeUnavailable
			resp.Popular = nil
			return
		}
		for _, movie := range movies {
			if seen[movie.ImdbID] {
				continue
			}
			seen[movie.ImdbID] = true
			resp.Popular = append(resp.Popular, response.CatalogToCard(movie))
		}
	}

	cards := make([]*response.MovieCard, len(topTenTitles))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, title := range topTenTitles {
		group.Go(func() error {
			movie, err := s.cat.ByTitle(groupCtx, title)
			if err != nil {
				return err
			}
			if movie != nil {
				card := response.CatalogToCard(*movie)
				cards[i] = &card
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		s.log.Warn("Catalog top-10 lookup failed", zap.Error(err))
		resp.Notice = noticeUnavailable
		resp.Popular = nil
		return
	}

	for _, card := range cards {
		if card != nil {
			resp.TopTen = append(resp.TopTen, *card)
		}
	}
}
