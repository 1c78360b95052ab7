package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"go.uber.org/zap"
)

// CommentService handles business logic for comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	userRepo    repositories.UserRepository
	resolver    *resolver
	logger      *zap.SugaredLogger
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	logger *zap.SugaredLogger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		resolver:    newResolver(tagRepo, userRepo),
		logger:      logger,
	}
}

// CreateComment creates a new comment with validation. The parent post
// and the author must both exist.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %w", err)
	}

	if _, err := s.postRepo.GetByID(comment.PostID); err != nil {
		return fmt.Errorf("post not found: %w", err)
	}
	if _, err := s.userRepo.GetByID(comment.AuthorID); err != nil {
		return fmt.Errorf("author not found: %w", err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return err
	}
	s.logger.Infow("comment created", "id", comment.ID, "post_id", comment.PostID)
	return s.resolver.hydrateComments([]*models.Comment{comment})
}

// GetComment retrieves a comment by ID with its author resolved.
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.hydrateComments([]*models.Comment{comment}); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post, oldest first.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post not found: %w", err)
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.hydrateComments(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment updates an existing comment with validation. A comment
// cannot move to another post and its creation time never changes.
func (s *CommentService) UpdateComment(comment *models.Comment) error {
	existing, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return err
	}
	if comment.PostID != 0 && comment.PostID != existing.PostID {
		return fmt.Errorf("comment does not belong to specified post")
	}

	comment.PostID = existing.PostID
	comment.AuthorID = existing.AuthorID
	comment.CreatedAt = existing.CreatedAt

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %w", err)
	}

	return s.commentRepo.Update(comment)
}

// DeleteComment deletes a comment.
func (s *CommentService) DeleteComment(id int) error {
	if _, err := s.commentRepo.GetByID(id); err != nil {
		return err
	}
	return s.commentRepo.Delete(id)
}
