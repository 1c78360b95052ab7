package services

import (
	"fmt"
	"strings"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"go.uber.org/zap"
)

// PostService handles business logic for blog posts.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	tagRepo     repositories.TagRepository
	userRepo    repositories.UserRepository
	resolver    *resolver
	logger      *zap.SugaredLogger
}

// NewPostService creates a new PostService.
func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	logger *zap.SugaredLogger,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		resolver:    newResolver(tagRepo, userRepo),
		logger:      logger,
	}
}

// CreatePost creates a new blog post with validation. Tag names are
// resolved to tags (created on first use) in the order given; that
// order is preserved and the first tag becomes the primary category.
func (s *PostService) CreatePost(post *models.Post, tagNames []string) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	if _, err := s.userRepo.GetByID(post.AuthorID); err != nil {
		return fmt.Errorf("author not found: %w", err)
	}

	tagIDs, err := s.resolveTagNames(tagNames)
	if err != nil {
		return err
	}
	post.TagIDs = tagIDs

	// Publication date is assigned here, once.
	post.PubDate = time.Now()

	if err := s.postRepo.Create(post); err != nil {
		return err
	}
	s.logger.Infow("post created", "id", post.ID, "title", post.Title)
	return s.resolver.hydrate(post)
}

// GetPost retrieves a post by ID with its tags, author and comments.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.hydrate(post); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	if err := s.resolver.hydrateComments(comments); err != nil {
		return nil, err
	}
	post.Comments = comments

	return post, nil
}

// UpdatePost updates an existing post with validation. The original
// publication date and author are preserved; tags are replaced by the
// given names, in order.
func (s *PostService) UpdatePost(post *models.Post, tagNames []string) error {
	existing, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return err
	}

	// PubDate and author are immutable after creation.
	post.PubDate = existing.PubDate
	post.AuthorID = existing.AuthorID

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	tagIDs, err := s.resolveTagNames(tagNames)
	if err != nil {
		return err
	}
	post.TagIDs = tagIDs

	if err := s.postRepo.Update(post); err != nil {
		return err
	}
	s.logger.Infow("post updated", "id", post.ID, "title", post.Title)
	return s.resolver.hydrate(post)
}

// DeletePost deletes a post and all its comments. Tags persist; only
// the post's links to them go away.
func (s *PostService) DeletePost(id int) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	if err := s.postRepo.Delete(id); err != nil {
		return err
	}
	s.logger.Infow("post deleted", "id", id)
	return nil
}

// resolveTagNames maps tag names to IDs, creating missing tags and
// dropping empty names and duplicates while keeping the given order.
func (s *PostService) resolveTagNames(tagNames []string) ([]int, error) {
	ids := make([]int, 0, len(tagNames))
	seen := make(map[int]bool)
	for _, name := range tagNames {
		if strings.TrimSpace(name) == "" {
			continue
		}
		tag, err := s.tagRepo.GetOrCreate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
		}
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		ids = append(ids, tag.ID)
	}
	return ids, nil
}
