package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sealoong/blogserver/config"
	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/repositories"
	"github.com/sealoong/blogserver/utils"
)

// FileService stores multipart uploads under a per-day directory with
// uuid-based names and records their metadata.
type FileService struct {
	files repositories.FileRepository
	cfg   config.AppConfig
}

func NewFileService(files repositories.FileRepository, cfg config.AppConfig) *FileService {
	return &FileService{files: files, cfg: cfg}
}

// Store saves one uploaded file and returns its metadata with the public URL.
func (s *FileService) Store(header *multipart.FileHeader) (*models.FileInfoView, error) {
	maxBytes := int64(s.cfg.FileMaxSizeMB) * 1024 * 1024
	if header.Size > maxBytes {
		return nil, utils.NewBadRequest(fmt.Sprintf("文件大小超过%dM", s.cfg.FileMaxSizeMB))
	}

	now := time.Now()
	dir := filepath.Join(s.cfg.UploadDir, now.Format("20060102"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	ext := filepath.Ext(header.Filename)
	filename := uuid.NewString() + ext
	dstPath := filepath.Join(dir, filename)

	if err := s.save(header, dstPath, maxBytes); err != nil {
		return nil, err
	}

	relPath := filepath.ToSlash(dstPath)
	view := &models.FileInfoView{
		Filename:     filename,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		Path:         relPath,
		Extension:    ext,
		UploadTime:   now,
		URL:          s.cfg.BaseURL + "/" + relPath,
	}

	record := &models.UploadedFile{
		Filename:     view.Filename,
		OriginalName: view.OriginalName,
		MimeType:     view.MimeType,
		Size:         view.Size,
		Path:         view.Path,
		Extension:    view.Extension,
		URL:          view.URL,
	}
	if err := s.files.Create(record); err != nil {
		// The file is already on disk; losing the metadata row is logged,
		// not fatal to the upload.
		if utils.Sugar != nil {
			utils.Sugar.Warnf("failed to record uploaded file %s: %v", relPath, err)
		}
	}

	return view, nil
}

// StoreAll saves a batch of uploads. The batch is all-or-nothing: a failure
// removes the files and metadata rows already stored for it.
func (s *FileService) StoreAll(headers []*multipart.FileHeader) ([]*models.FileInfoView, error) {
	views := make([]*models.FileInfoView, 0, len(headers))
	for _, h := range headers {
		view, err := s.Store(h)
		if err != nil {
			s.rollback(views)
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *FileService) rollback(views []*models.FileInfoView) {
	for _, view := range views {
		if err := os.Remove(view.Path); err != nil && utils.Sugar != nil {
			utils.Sugar.Warnf("failed to remove rolled-back upload %s: %v", view.Path, err)
		}
		if err := s.files.DeleteByPath(view.Path); err != nil && utils.Sugar != nil {
			utils.Sugar.Warnf("failed to remove metadata of rolled-back upload %s: %v", view.Path, err)
		}
	}
}

func (s *FileService) save(header *multipart.FileHeader, dstPath string, maxBytes int64) error {
	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	// header.Size is client-reported; the copy itself is capped too.
	written, err := io.Copy(dst, &io.LimitedReader{R: src, N: maxBytes + 1})
	if err != nil {
		_ = os.Remove(dstPath)
		return err
	}
	if written > maxBytes {
		_ = os.Remove(dstPath)
		return utils.NewBadRequest(fmt.Sprintf("文件大小超过%dM", s.cfg.FileMaxSizeMB))
	}
	return nil
}
