package services

import (
	"time"

	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/repositories"
	"github.com/sealoong/blogserver/utils"
)

const tagListCacheKey = "cache:tags:active"

// TagService owns the tag write paths: create and soft delete. The active
// tag list is cached, invalidated on every mutation.
type TagService struct {
	tags repositories.TagRepository
}

func NewTagService(tags repositories.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// List returns all active tags, newest first.
func (s *TagService) List() ([]*models.TagView, error) {
	var cached []*models.TagView
	if utils.CacheGetJSON(tagListCacheKey, &cached) {
		return cached, nil
	}

	tags, err := s.tags.ListActive()
	if err != nil {
		return nil, err
	}
	views := make([]*models.TagView, 0, len(tags))
	for i := range tags {
		views = append(views, FormatTag(&tags[i]))
	}
	utils.CacheSetJSON(tagListCacheKey, views, time.Hour)
	return views, nil
}

// Create stores a new active tag. Titles are not unique.
func (s *TagService) Create(req models.CreateTagRequest) (*models.TagView, error) {
	tag := &models.Tag{
		Title: req.Title,
		Color: req.Color,
		State: models.StateActive,
	}
	if err := s.tags.Create(tag); err != nil {
		return nil, err
	}
	utils.CacheDelete(tagListCacheKey)
	return FormatTag(tag), nil
}

// Delete soft-deletes an active tag. A second call on the same tag fails
// NotFound: the effect is idempotent, the call is not.
func (s *TagService) Delete(id uint) error {
	matched, err := s.tags.SoftDelete(id)
	if err != nil {
		return err
	}
	if !matched {
		return utils.NewNotFound("标签不存在")
	}
	utils.CacheDelete(tagListCacheKey)
	return nil
}
