package services

import (
	"sync"
	"testing"
	"time"

	"inkwell/app/cache"
	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type homeFixture struct {
	service  *HomeService
	postRepo *mockPostRepo
	store    *cache.Memory
	clock    *fakeClock
}

func newHomeFixture(t *testing.T) *homeFixture {
	t.Helper()
	postRepo := newMockPostRepo()
	tagRepo := newMockTagRepo()
	userRepo := newMockUserRepo()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := cache.NewMemoryWithClock(clock.Now)

	return &homeFixture{
		service:  NewHomeService(postRepo, tagRepo, userRepo, store, testLogger),
		postRepo: postRepo,
		store:    store,
		clock:    clock,
	}
}

func (f *homeFixture) seedPost(t *testing.T, title string, pubDate time.Time) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "content", PubDate: pubDate, AuthorID: 1}
	require.NoError(t, f.postRepo.Create(post))
	return post
}

func TestLatestPostsTruncates(t *testing.T) {
	f := newHomeFixture(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.seedPost(t, "Post", base.Add(time.Duration(i)*time.Minute))
	}
	newest := f.seedPost(t, "Freshest", base.Add(time.Hour))

	posts, err := f.service.LatestPosts()

	require.NoError(t, err)
	require.Len(t, posts, cache.HomeLatestCount)
	assert.Equal(t, newest.ID, posts[0].ID)
}

func TestLatestPostsServesCachedSnapshot(t *testing.T) {
	f := newHomeFixture(t)
	f.seedPost(t, "Only Post", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	first, err := f.service.LatestPosts()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// The store is now out of reach; a cache hit must not touch it.
	f.postRepo.listErr = errStoreDown

	second, err := f.service.LatestPosts()
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestLatestPostsStaleUntilExpiry(t *testing.T) {
	f := newHomeFixture(t)
	f.seedPost(t, "Old Post", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	posts, err := f.service.LatestPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)

	// A post created after the snapshot stays invisible while the
	// entry is fresh.
	f.seedPost(t, "New Post", time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC))

	f.clock.Advance(cache.HomeLatestTTL - time.Second)
	posts, err = f.service.LatestPosts()
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	f.clock.Advance(2 * time.Second)
	posts, err = f.service.LatestPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "New Post", posts[0].Title)
}

func TestLatestPostsRecoversFromMalformedEntry(t *testing.T) {
	f := newHomeFixture(t)
	post := f.seedPost(t, "Only Post", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	f.store.Set(cache.HomeLatestKey, []byte("{not json"), cache.HomeLatestTTL)

	posts, err := f.service.LatestPosts()

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestLatestPostsStoreError(t *testing.T) {
	f := newHomeFixture(t)
	f.postRepo.listErr = errStoreDown

	posts, err := f.service.LatestPosts()

	assert.Error(t, err)
	assert.Nil(t, posts)
}
