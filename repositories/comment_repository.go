package repositories

import (
	"gorm.io/gorm"

	"github.com/sealoong/blogserver/models"
)

// CommentRepository owns comment persistence. Comments have no soft delete
// and are immutable once created.
type CommentRepository interface {
	Create(comment *models.Comment) error
	// ListByArticle returns comments scoped to an article, newest first.
	ListByArticle(articleID uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) ListByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("aid = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
