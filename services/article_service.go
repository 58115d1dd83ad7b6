package services

import (
	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/repositories"
	"github.com/sealoong/blogserver/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ArticleUpdate carries the optional fields of a partial article update.
// Nil pointers leave the stored value untouched.
type ArticleUpdate struct {
	Title   *string
	Intro   *string
	Content *string
	TagID   *uint
	Img     *string
}

// ArticleService orchestrates article CRUD, pagination, tag resolution and
// the watch/likes/top counters. It holds a read-only tag reference for
// validation and display denormalization; all article writes go through here.
type ArticleService struct {
	articles repositories.ArticleRepository
	tags     repositories.TagRepository
}

func NewArticleService(articles repositories.ArticleRepository, tags repositories.TagRepository) *ArticleService {
	return &ArticleService{articles: articles, tags: tags}
}

// List returns one page of active articles ordered by (top desc, createdAt
// desc) with their tag references resolved. Total counts all active articles
// regardless of the page window.
func (s *ArticleService) List(page, limit int) (*models.ArticleListView, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	articles, err := s.articles.ListActive((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.articles.CountActive()
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(articles)
	if err != nil {
		return nil, err
	}

	return &models.ArticleListView{
		List:  FormatArticles(articles, tags),
		Total: total,
	}, nil
}

// GetDetail fetches an active article, counting the view. The increment is a
// server-side atomic update: concurrent fetches never lose counts.
func (s *ArticleService) GetDetail(id uint) (*models.ArticleView, error) {
	matched, err := s.articles.IncrementWatch(id)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, utils.NewNotFound("文章不存在或已删除")
	}

	article, err := s.articles.FindActive(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		// Soft-deleted between the increment and the read.
		return nil, utils.NewNotFound("文章不存在或已删除")
	}
	return s.formatWithTag(article)
}

// Create persists a new active article after validating its tag reference.
func (s *ArticleService) Create(req models.CreateArticleRequest, tagID uint) (*models.ArticleView, error) {
	tag, err := s.ensureValidTag(tagID)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:   req.Title,
		Intro:   req.Intro,
		Content: req.Content,
		TagID:   tagID,
		State:   models.StateActive,
		Img:     req.Img,
	}
	if err := s.articles.Create(article); err != nil {
		return nil, err
	}
	return FormatArticle(article, tag), nil
}

// Update merges the supplied fields into an active article. A supplied tag
// reference is re-validated against active tags. Only the supplied columns
// are written, so a concurrent watch/likes increment or soft delete is never
// overwritten with a stale snapshot.
func (s *ArticleService) Update(id uint, upd ArticleUpdate) (*models.ArticleView, error) {
	if upd.TagID != nil {
		if _, err := s.ensureValidTag(*upd.TagID); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Intro != nil {
		fields["intro"] = *upd.Intro
	}
	if upd.Content != nil {
		fields["content"] = *upd.Content
	}
	if upd.TagID != nil {
		fields["tag_id"] = *upd.TagID
	}
	if upd.Img != nil {
		fields["img"] = *upd.Img
	}

	if len(fields) > 0 {
		if err := s.articles.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	article, err := s.articles.FindActive(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, utils.NewNotFound("文章不存在或已删除")
	}
	return s.formatWithTag(article)
}

// Delete soft-deletes an active article. There is no restore.
func (s *ArticleService) Delete(id uint) error {
	matched, err := s.articles.SoftDelete(id)
	if err != nil {
		return err
	}
	if !matched {
		return utils.NewNotFound("文章不存在或已删除")
	}
	return nil
}

// UpdateTop sets the list-ordering weight of an active article. The write
// touches only the top column.
func (s *ArticleService) UpdateTop(id uint, top int) (*models.ArticleView, error) {
	if top < 0 {
		return nil, utils.NewBadRequest("置顶权重不能小于 0")
	}

	if err := s.articles.UpdateFields(id, map[string]interface{}{"top": top}); err != nil {
		return nil, err
	}

	article, err := s.articles.FindActive(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, utils.NewNotFound("文章不存在或已删除")
	}
	return FormatArticle(article, nil), nil
}

// Like atomically increments the like counter of an active article. Public
// and repeatable.
func (s *ArticleService) Like(id uint) (*models.ArticleView, error) {
	matched, err := s.articles.IncrementLikes(id)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, utils.NewNotFound("文章不存在或已删除")
	}

	article, err := s.articles.FindActive(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, utils.NewNotFound("文章不存在或已删除")
	}
	return FormatArticle(article, nil), nil
}

// ensureValidTag requires the reference to point at an active tag. The check
// holds at write time only; a later tag soft-delete leaves a tolerated
// dangling reference.
func (s *ArticleService) ensureValidTag(id uint) (*models.Tag, error) {
	tag, err := s.tags.FindActive(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, utils.NewNotFound("标签不存在或已删除")
	}
	return tag, nil
}

// formatWithTag resolves a single tag reference for embedding. The lookup is
// by id regardless of tag state: a tag soft-deleted after being referenced
// still renders; only a missing row leaves the bare reference id.
func (s *ArticleService) formatWithTag(article *models.Article) (*models.ArticleView, error) {
	tag, err := s.tags.FindByID(article.TagID)
	if err != nil {
		return nil, err
	}
	return FormatArticle(article, tag), nil
}

// resolveTags batch-fetches the tags referenced by a page of articles.
func (s *ArticleService) resolveTags(articles []models.Article) (map[uint]models.Tag, error) {
	ids := make([]uint, 0, len(articles))
	seen := make(map[uint]bool, len(articles))
	for i := range articles {
		if id := articles[i].TagID; !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	tags, err := s.tags.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	return byID, nil
}
