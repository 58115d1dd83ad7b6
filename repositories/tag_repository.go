package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sealoong/blogserver/models"
)

// TagRepository owns all tag persistence. Soft-delete filtering is explicit
// in every query that must exclude deleted rows.
type TagRepository interface {
	// ListActive returns active tags ordered by creation time descending.
	ListActive() ([]models.Tag, error)
	// FindByID returns the tag regardless of state, or nil when absent.
	FindByID(id uint) (*models.Tag, error)
	// FindActive returns the tag only when state is active, or nil.
	FindActive(id uint) (*models.Tag, error)
	// FindByIDs returns tags for the given ids regardless of state.
	FindByIDs(ids []uint) ([]models.Tag, error)
	Create(tag *models.Tag) error
	// SoftDelete flips an active tag to deleted. Returns false when no active
	// row matched.
	SoftDelete(id uint) (bool, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) ListActive() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("state = ?", models.StateActive).
		Order("created_at DESC").
		Find(&tags).Error
	return tags, err
}

func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindActive(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("id = ? AND state = ?", id, models.StateActive).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindByIDs(ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) SoftDelete(id uint) (bool, error) {
	res := r.db.Model(&models.Tag{}).
		Where("id = ? AND state = ?", id, models.StateActive).
		Update("state", models.StateDeleted)
	return res.RowsAffected > 0, res.Error
}
