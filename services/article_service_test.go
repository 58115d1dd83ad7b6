package services_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/services"
	"github.com/sealoong/blogserver/utils"
)

func newArticleFixture(t *testing.T) (*services.ArticleService, *fakeArticleRepo, *fakeTagRepo, *models.Tag) {
	t.Helper()
	tagRepo := newFakeTagRepo()
	articleRepo := newFakeArticleRepo()
	tag := &models.Tag{Title: "Go", Color: "#00ADD8", State: models.StateActive}
	require.NoError(t, tagRepo.Create(tag))
	return services.NewArticleService(articleRepo, tagRepo), articleRepo, tagRepo, tag
}

func createArticle(t *testing.T, svc *services.ArticleService, tagID uint, title string) *models.ArticleView {
	t.Helper()
	view, err := svc.Create(models.CreateArticleRequest{
		Title:   title,
		Intro:   "intro",
		Content: "content",
	}, tagID)
	require.NoError(t, err)
	return view
}

func TestCreateArticleValidatesTag(t *testing.T) {
	svc, _, tagRepo, tag := newArticleFixture(t)

	view := createArticle(t, svc, tag.ID, "hello")
	assert.Equal(t, "1", view.ID)
	assert.Equal(t, models.StateActive, view.State)
	assert.Equal(t, 0, view.Top)
	assert.Equal(t, 0, view.Watch)
	assert.Equal(t, 0, view.Likes)
	require.NotNil(t, view.Tag)
	assert.Equal(t, tag.Title, view.Tag.Title)
	assert.Equal(t, tag.Color, view.Tag.Color)

	// nonexistent tag
	_, err := svc.Create(models.CreateArticleRequest{Title: "t", Intro: "i", Content: "c"}, 999)
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)

	// soft-deleted tag
	matched, err := tagRepo.SoftDelete(tag.ID)
	require.NoError(t, err)
	require.True(t, matched)
	_, err = svc.Create(models.CreateArticleRequest{Title: "t", Intro: "i", Content: "c"}, tag.ID)
	apiErr, ok = utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}

func TestListFiltersSortsAndPaginates(t *testing.T) {
	svc, _, tagRepo, tag := newArticleFixture(t)

	first := createArticle(t, svc, tag.ID, "first")
	createArticle(t, svc, tag.ID, "second")
	pinned := createArticle(t, svc, tag.ID, "pinned")
	deleted := createArticle(t, svc, tag.ID, "deleted")

	_, err := svc.UpdateTop(3, 5) // pinned
	require.NoError(t, err)
	require.NoError(t, svc.Delete(4)) // deleted

	result, err := svc.List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	require.Len(t, result.List, 3)
	// top desc first, then createdAt desc
	assert.Equal(t, pinned.ID, result.List[0].ID)
	assert.Equal(t, "second", result.List[1].Title)
	assert.Equal(t, first.ID, result.List[2].ID)
	for _, item := range result.List {
		assert.Equal(t, models.StateActive, item.State)
		assert.NotEqual(t, deleted.ID, item.ID)
		require.NotNil(t, item.Tag)
		assert.Equal(t, tag.Title, item.Tag.Title)
	}

	// total ignores the page window
	page2, err := svc.List(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page2.Total)
	require.Len(t, page2.List, 1)
	assert.Equal(t, first.ID, page2.List[0].ID)

	// out-of-range defaults
	defaulted, err := svc.List(0, 1000)
	require.NoError(t, err)
	assert.Len(t, defaulted.List, 3)

	// a tag soft-deleted after being referenced still renders embedded
	_, err = tagRepo.SoftDelete(tag.ID)
	require.NoError(t, err)
	stale, err := svc.List(1, 10)
	require.NoError(t, err)
	require.NotNil(t, stale.List[0].Tag)
}

func TestGetDetailIncrementsWatch(t *testing.T) {
	svc, _, _, tag := newArticleFixture(t)
	created := createArticle(t, svc, tag.ID, "watched")

	view, err := svc.GetDetail(1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.ID)
	assert.Equal(t, 1, view.Watch)
	require.NotNil(t, view.Tag)

	view, err = svc.GetDetail(1)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Watch)

	_, err = svc.GetDetail(42)
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)

	require.NoError(t, svc.Delete(1))
	_, err = svc.GetDetail(1)
	_, ok = utils.AsAPIError(err)
	require.True(t, ok)
}

func TestGetDetailConcurrentWatch(t *testing.T) {
	svc, repo, _, tag := newArticleFixture(t)
	createArticle(t, svc, tag.ID, "hot")

	const callers = 50
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.GetDetail(1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	article, err := repo.FindActive(1)
	require.NoError(t, err)
	assert.Equal(t, callers, article.Watch)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc, _, tagRepo, tag := newArticleFixture(t)
	createArticle(t, svc, tag.ID, "original")

	newTitle := "renamed"
	view, err := svc.Update(1, services.ArticleUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "renamed", view.Title)
	assert.Equal(t, "intro", view.Intro)
	assert.Equal(t, "content", view.Content)

	// supplied tagid is revalidated against active tags
	other := &models.Tag{Title: "Rust", Color: "#DEA584", State: models.StateActive}
	require.NoError(t, tagRepo.Create(other))
	view, err = svc.Update(1, services.ArticleUpdate{TagID: &other.ID})
	require.NoError(t, err)
	require.NotNil(t, view.Tag)
	assert.Equal(t, "Rust", view.Tag.Title)

	_, err = tagRepo.SoftDelete(other.ID)
	require.NoError(t, err)
	_, err = svc.Update(1, services.ArticleUpdate{TagID: &other.ID})
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)

	// soft-deleted article cannot be updated
	require.NoError(t, svc.Delete(1))
	_, err = svc.Update(1, services.ArticleUpdate{Title: &newTitle})
	apiErr, ok = utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}

// likeDuringUpdateRepo lands a like increment right before an update's write,
// inside the window where a full-row write-back would lose it.
type likeDuringUpdateRepo struct {
	*fakeArticleRepo
	raced bool
}

func (r *likeDuringUpdateRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	if !r.raced {
		r.raced = true
		if _, err := r.fakeArticleRepo.IncrementLikes(id); err != nil {
			return err
		}
	}
	return r.fakeArticleRepo.UpdateFields(id, fields)
}

func TestUpdateKeepsConcurrentLikeIncrement(t *testing.T) {
	tagRepo := newFakeTagRepo()
	tag := &models.Tag{Title: "Go", Color: "#00ADD8", State: models.StateActive}
	require.NoError(t, tagRepo.Create(tag))
	inner := newFakeArticleRepo()
	repo := &likeDuringUpdateRepo{fakeArticleRepo: inner}
	svc := services.NewArticleService(repo, tagRepo)
	createArticle(t, svc, tag.ID, "contended")

	newTitle := "renamed"
	view, err := svc.Update(1, services.ArticleUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "renamed", view.Title)
	assert.Equal(t, 1, view.Likes)

	stored, err := inner.FindActive(1)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Likes)

	repo.raced = false
	topped, err := svc.UpdateTop(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, topped.Top)
	assert.Equal(t, 2, topped.Likes)
}

func TestDeleteIsNotRepeatable(t *testing.T) {
	svc, repo, _, tag := newArticleFixture(t)
	createArticle(t, svc, tag.ID, "doomed")

	require.NoError(t, svc.Delete(1))

	a := repo.articles[1]
	assert.Equal(t, models.StateDeleted, a.State)

	err := svc.Delete(1)
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, models.StateDeleted, repo.articles[1].State)
}

func TestUpdateTop(t *testing.T) {
	svc, _, _, tag := newArticleFixture(t)
	createArticle(t, svc, tag.ID, "a")

	view, err := svc.UpdateTop(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, view.Top)

	_, err = svc.UpdateTop(1, -1)
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)

	_, err = svc.UpdateTop(99, 1)
	apiErr, ok = utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}

func TestLikeIncrements(t *testing.T) {
	svc, _, _, tag := newArticleFixture(t)
	createArticle(t, svc, tag.ID, "likable")

	view, err := svc.Like(1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Likes)
	view, err = svc.Like(1)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Likes)

	require.NoError(t, svc.Delete(1))
	_, err = svc.Like(1)
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}

func TestArticleViewShape(t *testing.T) {
	svc, _, tagRepo, tag := newArticleFixture(t)
	createArticle(t, svc, tag.ID, "shaped")

	view, err := svc.GetDetail(1)
	require.NoError(t, err)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "1", doc["id"])
	assert.Equal(t, "1", doc["tagid"])
	embedded, ok := doc["tag"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Go", embedded["title"])
	assert.Equal(t, "#00ADD8", embedded["color"])

	// unresolvable reference: only the raw id survives
	delete(tagRepo.tags, tag.ID)
	view, err = svc.GetDetail(1)
	require.NoError(t, err)
	raw, err = json.Marshal(view)
	require.NoError(t, err)
	doc = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	_, hasTag := doc["tag"]
	assert.False(t, hasTag)
	assert.Equal(t, "1", doc["tagid"])

	assert.Nil(t, services.FormatArticle(nil, nil))
}
