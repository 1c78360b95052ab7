package services

import (
	"errors"
	"sort"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"go.uber.org/zap"
)

var testLogger = zap.NewNop().Sugar()

type mockPostRepo struct {
	posts   map[int]*models.Post
	nextID  int
	listErr error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[int]*models.Post), nextID: 1}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (m *mockPostRepo) ListAll() ([]*models.Post, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		clone := *post
		posts = append(posts, &clone)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].PubDate.After(posts[j].PubDate)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type mockTagRepo struct {
	tags   map[int]*models.Tag
	nextID int
}

func newMockTagRepo() *mockTagRepo {
	return &mockTagRepo{tags: make(map[int]*models.Tag), nextID: 1}
}

func (m *mockTagRepo) Create(tag *models.Tag) error {
	tag.Normalize()
	tag.EnsureSlug()
	if err := tag.Validate(); err != nil {
		return err
	}
	for _, existing := range m.tags {
		if strings.EqualFold(existing.Name, tag.Name) {
			return repositories.ErrDuplicate
		}
	}
	tag.ID = m.nextID
	m.nextID++
	m.tags[tag.ID] = tag
	return nil
}

func (m *mockTagRepo) GetByID(id int) (*models.Tag, error) {
	tag, exists := m.tags[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return tag, nil
}

func (m *mockTagRepo) GetByName(name string) (*models.Tag, error) {
	for _, tag := range m.tags {
		if strings.EqualFold(tag.Name, strings.TrimSpace(name)) {
			return tag, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockTagRepo) GetOrCreate(name string) (*models.Tag, error) {
	if tag, err := m.GetByName(name); err == nil {
		return tag, nil
	}
	tag := &models.Tag{Name: name}
	if err := m.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (m *mockTagRepo) List() ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, len(m.tags))
	for _, tag := range m.tags {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (m *mockTagRepo) Delete(id int) error {
	if _, exists := m.tags[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.tags, id)
	return nil
}

type mockCommentRepo struct {
	comments map[int]*models.Comment
	nextID   int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[int]*models.Comment), nextID: 1}
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	comment.BeforeCreate()
	clone := *comment
	m.comments[comment.ID] = &clone
	return nil
}

func (m *mockCommentRepo) GetByID(id int) (*models.Comment, error) {
	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *comment
	return &clone, nil
}

func (m *mockCommentRepo) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			clone := *comment
			comments = append(comments, &clone)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (m *mockCommentRepo) Update(comment *models.Comment) error {
	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	clone := *comment
	m.comments[comment.ID] = &clone
	return nil
}

func (m *mockCommentRepo) Delete(id int) error {
	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *mockCommentRepo) DeleteByPost(postID int) error {
	for id, comment := range m.comments {
		if comment.PostID == postID {
			delete(m.comments, id)
		}
	}
	return nil
}

type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

var errStoreDown = errors.New("store unavailable")
