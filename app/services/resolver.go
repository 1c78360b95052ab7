package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// resolver fills in the associations that repositories store as bare
// IDs: ordered tags and author identities.
type resolver struct {
	tagRepo  repositories.TagRepository
	userRepo repositories.UserRepository
}

func newResolver(tagRepo repositories.TagRepository, userRepo repositories.UserRepository) *resolver {
	return &resolver{tagRepo: tagRepo, userRepo: userRepo}
}

// hydrate resolves tags and authors for the given posts. Tags are
// loaded once per call; authors are memoized per ID. A dangling tag or
// author reference is skipped rather than treated as an error.
func (r *resolver) hydrate(posts ...*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	tags, err := r.tagRepo.List()
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}
	tagsByID := make(map[int]*models.Tag, len(tags))
	for _, tag := range tags {
		tagsByID[tag.ID] = tag
	}

	users := make(map[int]*models.User)
	for _, post := range posts {
		post.Tags = make([]*models.Tag, 0, len(post.TagIDs))
		for _, id := range post.TagIDs {
			if tag, ok := tagsByID[id]; ok {
				post.Tags = append(post.Tags, tag)
			}
		}

		author, err := r.user(users, post.AuthorID)
		if err != nil {
			return err
		}
		post.Author = author
	}
	return nil
}

// hydrateComments resolves comment authors.
func (r *resolver) hydrateComments(comments []*models.Comment) error {
	users := make(map[int]*models.User)
	for _, comment := range comments {
		author, err := r.user(users, comment.AuthorID)
		if err != nil {
			return err
		}
		comment.Author = author
	}
	return nil
}

func (r *resolver) user(memo map[int]*models.User, id int) (*models.User, error) {
	if user, ok := memo[id]; ok {
		return user, nil
	}
	user, err := r.userRepo.GetByID(id)
	if err == repositories.ErrNotFound {
		memo[id] = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	memo[id] = user
	return user, nil
}
