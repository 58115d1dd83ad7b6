package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sealoong/blogserver/models"
)

// ArticleRepository owns all article persistence. Counter mutations are
// single server-side UPDATE expressions so concurrent hits never lose
// increments.
type ArticleRepository interface {
	// ListActive returns active articles ordered by (top desc, createdAt
	// desc) with the given window.
	ListActive(offset, limit int) ([]models.Article, error)
	// CountActive counts active articles regardless of windowing.
	CountActive() (int64, error)
	// FindActive returns the article only when state is active, or nil.
	FindActive(id uint) (*models.Article, error)
	Create(article *models.Article) error
	// UpdateFields writes only the given columns on an active article. Rows
	// hit by concurrent counter increments keep those increments.
	UpdateFields(id uint, fields map[string]interface{}) error
	// SoftDelete flips an active article to deleted. Returns false when no
	// active row matched.
	SoftDelete(id uint) (bool, error)
	// IncrementWatch atomically bumps watch on an active article. Returns
	// false when no active row matched.
	IncrementWatch(id uint) (bool, error)
	// IncrementLikes atomically bumps likes on an active article. Returns
	// false when no active row matched.
	IncrementLikes(id uint) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) ListActive(offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("state = ?", models.StateActive).
		Order("top DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) CountActive() (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).
		Where("state = ?", models.StateActive).
		Count(&total).Error
	return total, err
}

func (r *articleRepository) FindActive(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("id = ? AND state = ?", id, models.StateActive).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Article{}).
		Where("id = ? AND state = ?", id, models.StateActive).
		Updates(fields).Error
}

func (r *articleRepository) SoftDelete(id uint) (bool, error) {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND state = ?", id, models.StateActive).
		Update("state", models.StateDeleted)
	return res.RowsAffected > 0, res.Error
}

func (r *articleRepository) IncrementWatch(id uint) (bool, error) {
	return r.increment(id, "watch")
}

func (r *articleRepository) IncrementLikes(id uint) (bool, error) {
	return r.increment(id, "likes")
}

func (r *articleRepository) increment(id uint, column string) (bool, error) {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND state = ?", id, models.StateActive).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	return res.RowsAffected > 0, res.Error
}
