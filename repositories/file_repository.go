package repositories

import (
	"gorm.io/gorm"

	"github.com/sealoong/blogserver/models"
)

// FileRepository records stored upload metadata.
type FileRepository interface {
	Create(file *models.UploadedFile) error
	// DeleteByPath removes the metadata row of a stored file. Paths are
	// unique, the stored name is a uuid.
	DeleteByPath(path string) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *models.UploadedFile) error {
	return r.db.Create(file).Error
}

func (r *fileRepository) DeleteByPath(path string) error {
	return r.db.Where("path = ?", path).Delete(&models.UploadedFile{}).Error
}
