package services

import (
	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/repositories"
	"github.com/sealoong/blogserver/utils"
)

const (
	defaultCommentName = "匿名"
	maxNameLength      = 12
	maxContentLength   = 1000
	ipLabelPrefixLen   = 10
)

// CommentService validates and stores comments scoped to an article.
type CommentService struct {
	comments repositories.CommentRepository
	articles repositories.ArticleRepository
}

func NewCommentService(comments repositories.CommentRepository, articles repositories.ArticleRepository) *CommentService {
	return &CommentService{comments: comments, articles: articles}
}

// Create stores a comment on an active article. Name and content are
// sanitized and trimmed before the length checks, so the limits bound the
// stored value; the caller IP is redacted into a suffix on the name.
func (s *CommentService) Create(articleID uint, req models.CreateCommentRequest, clientIP string) (*models.CommentView, error) {
	article, err := s.articles.FindActive(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, utils.NewNotFound("文章不存在或已删除")
	}

	name := req.Name
	if name == "" {
		name = defaultCommentName
	}
	name = utils.Sanitize(name)
	content := utils.Sanitize(req.Content)

	if utils.WeightedLength(name) > maxNameLength {
		return nil, utils.NewBadRequest("昵称长度超过限制")
	}
	if utils.WeightedLength(content) > maxContentLength {
		return nil, utils.NewBadRequest("评论内容超过限制")
	}

	comment := &models.Comment{
		Name:    name + " " + buildIPLabel(clientIP),
		Content: content,
		AID:     article.ID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return FormatComment(comment), nil
}

// List returns all comments for an article, newest first. No existence check
// on the article: a missing article simply lists nothing.
func (s *CommentService) List(articleID uint) ([]*models.CommentView, error) {
	comments, err := s.comments.ListByArticle(articleID)
	if err != nil {
		return nil, err
	}
	views := make([]*models.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, FormatComment(&comments[i]))
	}
	return views, nil
}

// buildIPLabel redacts a client IP into the stored suffix: the first 10
// characters of the IP string followed by "**". IPv6 addresses get the
// same cut.
func buildIPLabel(ip string) string {
	if ip == "" {
		return "**"
	}
	if len(ip) > ipLabelPrefixLen {
		ip = ip[:ipLabelPrefixLen]
	}
	return ip + "**"
}
