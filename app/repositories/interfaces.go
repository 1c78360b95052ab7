package repositories

import "inkwell/app/models"

// PostRepository defines the interface for post data access.
// ListAll returns posts ordered newest first (publication date
// descending, ID descending on ties).
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	ListAll() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// TagRepository defines the interface for tag data access. Tag names
// are unique after normalization; GetOrCreate resolves a name to its
// existing tag or creates one.
type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id int) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	GetOrCreate(name string) (*models.Tag, error)
	List() ([]*models.Tag, error)
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access.
// ListByPost returns comments oldest first.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
	DeleteByPost(postID int) error
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}
