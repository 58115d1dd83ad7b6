package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/services"
	"github.com/sealoong/blogserver/utils"
)

// ArticleController exposes articles with their tags and comments.
type ArticleController struct {
	articles *services.ArticleService
	tags     *services.TagService
	comments *services.CommentService
}

func NewArticleController(articles *services.ArticleService, tags *services.TagService, comments *services.CommentService) *ArticleController {
	return &ArticleController{articles: articles, tags: tags, comments: comments}
}

// List returns one page of active articles.
func (a *ArticleController) List(ctx *gin.Context) {
	var query models.ListArticlesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "分页参数非法")
		return
	}

	result, err := a.articles.List(query.Page, query.Limit)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, result)
}

// Detail returns a single active article and counts the view.
func (a *ArticleController) Detail(ctx *gin.Context) {
	id, ok := parseID(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	article, err := a.articles.GetDetail(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, article)
}

// Create stores a new article. Requires authorization.
func (a *ArticleController) Create(ctx *gin.Context) {
	var req models.CreateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "请求参数非法")
		return
	}
	tagID, ok := parseID(ctx, req.TagID)
	if !ok {
		return
	}

	article, err := a.articles.Create(req, tagID)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, article)
}

// Update merges supplied fields into an active article. Requires
// authorization.
func (a *ArticleController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "请求参数非法")
		return
	}

	upd := services.ArticleUpdate{
		Title:   req.Title,
		Intro:   req.Intro,
		Content: req.Content,
		Img:     req.Img,
	}
	if req.TagID != nil {
		tagID, ok := parseID(ctx, *req.TagID)
		if !ok {
			return
		}
		upd.TagID = &tagID
	}

	article, err := a.articles.Update(id, upd)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, article)
}

// Delete soft-deletes an active article. Requires authorization.
func (a *ArticleController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	if err := a.articles.Delete(id); err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, nil)
}

// UpdateTop sets the list-ordering weight. Requires authorization.
func (a *ArticleController) UpdateTop(ctx *gin.Context) {
	var req models.UpdateArticleTopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "请求参数非法")
		return
	}
	id, ok := parseID(ctx, req.ID)
	if !ok {
		return
	}

	article, err := a.articles.UpdateTop(id, *req.Top)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, article)
}

// Like increments the like counter. Public, repeatable.
func (a *ArticleController) Like(ctx *gin.Context) {
	id, ok := parseID(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	article, err := a.articles.Like(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, article)
}

// ListTags returns all active tags.
func (a *ArticleController) ListTags(ctx *gin.Context) {
	tags, err := a.tags.List()
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, tags)
}

// CreateTag stores a new tag.
func (a *ArticleController) CreateTag(ctx *gin.Context) {
	var req models.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "请求参数非法")
		return
	}

	tag, err := a.tags.Create(req)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, tag)
}

// DeleteTag soft-deletes a tag; the id travels in the body. Requires
// authorization.
func (a *ArticleController) DeleteTag(ctx *gin.Context) {
	var req models.DeleteTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "请求参数非法")
		return
	}
	id, ok := parseID(ctx, req.ID)
	if !ok {
		return
	}

	if err := a.tags.Delete(id); err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, nil)
}

// CreateComment stores a visitor comment on an active article. Public.
func (a *ArticleController) CreateComment(ctx *gin.Context) {
	id, ok := parseID(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "请求参数非法")
		return
	}

	comment, err := a.comments.Create(id, req, ctx.ClientIP())
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, comment)
}

// ListComments returns all comments of an article, newest first.
func (a *ArticleController) ListComments(ctx *gin.Context) {
	id, ok := parseID(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	comments, err := a.comments.List(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, comments)
}

// parseID validates an id path/body parameter before any lookup. Malformed
// ids are rejected with BadRequest right here.
func parseID(ctx *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.Error(ctx, http.StatusBadRequest, "ID 非法")
		return 0, false
	}
	return uint(id), true
}
