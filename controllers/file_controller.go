package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sealoong/blogserver/services"
	"github.com/sealoong/blogserver/utils"
)

// Uploads beyond this count per request are rejected.
const maxUploadFiles = 3

// FileController handles multipart uploads.
type FileController struct {
	files *services.FileService
}

func NewFileController(files *services.FileService) *FileController {
	return &FileController{files: files}
}

// Upload stores a single file from the "file" form field.
func (f *FileController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "未找到上传文件")
		return
	}

	info, err := f.files.Store(header)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, info)
}

// UploadFiles stores up to maxUploadFiles files from the "files" form field.
func (f *FileController) UploadFiles(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "未找到上传文件")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		utils.Error(ctx, http.StatusBadRequest, "未找到上传文件")
		return
	}
	if len(headers) > maxUploadFiles {
		utils.Error(ctx, http.StatusBadRequest, "上传文件数量超过限制")
		return
	}

	infos, err := f.files.StoreAll(headers)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, infos)
}
