package services

import (
	"encoding/json"
	"fmt"

	"inkwell/app/cache"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"go.uber.org/zap"
)

// HomeService serves the home page's "latest posts" feed through the
// cache layer. Entries live for the cache TTL and are never invalidated
// on writes, so a new post can take up to 15 minutes to appear here.
type HomeService struct {
	postRepo repositories.PostRepository
	store    cache.Store
	resolver *resolver
	logger   *zap.SugaredLogger
}

// NewHomeService creates a new HomeService. The cache store is injected
// so tests can substitute a deterministic in-memory fake.
func NewHomeService(
	postRepo repositories.PostRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	store cache.Store,
	logger *zap.SugaredLogger,
) *HomeService {
	return &HomeService{
		postRepo: postRepo,
		store:    store,
		resolver: newResolver(tagRepo, userRepo),
		logger:   logger,
	}
}

// LatestPosts returns the newest posts for the home page, serving the
// cached snapshot when one is still fresh and recomputing from the
// post store otherwise.
func (s *HomeService) LatestPosts() ([]*models.Post, error) {
	if data, ok := s.store.Get(cache.HomeLatestKey); ok {
		var posts []*models.Post
		if err := json.Unmarshal(data, &posts); err == nil {
			return posts, nil
		}
		s.logger.Warnw("dropping malformed home cache entry", "key", cache.HomeLatestKey)
	}

	posts, err := s.postRepo.ListAll()
	if err != nil {
		s.logger.Errorw("failed to load latest posts", "error", err)
		return nil, fmt.Errorf("failed to load latest posts: %w", err)
	}
	if len(posts) > cache.HomeLatestCount {
		posts = posts[:cache.HomeLatestCount]
	}
	if err := s.resolver.hydrate(posts...); err != nil {
		s.logger.Errorw("failed to resolve latest posts", "error", err)
		return nil, err
	}

	if data, err := json.Marshal(posts); err == nil {
		s.store.Set(cache.HomeLatestKey, data, cache.HomeLatestTTL)
	} else {
		s.logger.Warnw("failed to encode home cache entry", "error", err)
	}

	return posts, nil
}
