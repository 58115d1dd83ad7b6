package services

import (
	"strconv"

	"github.com/sealoong/blogserver/models"
)

// Response shaping: persisted records become API views with stringified ids,
// internal bookkeeping stripped and resolved tag references embedded as a
// shallow {title,color} copy. Nil records pass through as nil.

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// FormatArticle shapes an article. When tag is non-nil its display fields are
// embedded and the raw reference id is demoted to a sibling string field;
// otherwise only the reference id survives (a dangling reference).
func FormatArticle(article *models.Article, tag *models.Tag) *models.ArticleView {
	if article == nil {
		return nil
	}
	view := &models.ArticleView{
		ID:        formatID(article.ID),
		Title:     article.Title,
		Intro:     article.Intro,
		Content:   article.Content,
		TagID:     formatID(article.TagID),
		State:     article.State,
		Top:       article.Top,
		Watch:     article.Watch,
		Likes:     article.Likes,
		Img:       article.Img,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
	if tag != nil {
		view.Tag = &models.TagEmbed{Title: tag.Title, Color: tag.Color}
	}
	return view
}

// FormatArticles shapes a list, resolving each tag reference from the
// pre-fetched tag map.
func FormatArticles(articles []models.Article, tags map[uint]models.Tag) []*models.ArticleView {
	views := make([]*models.ArticleView, 0, len(articles))
	for i := range articles {
		var tag *models.Tag
		if t, ok := tags[articles[i].TagID]; ok {
			tag = &t
		}
		views = append(views, FormatArticle(&articles[i], tag))
	}
	return views
}

func FormatTag(tag *models.Tag) *models.TagView {
	if tag == nil {
		return nil
	}
	return &models.TagView{
		ID:        formatID(tag.ID),
		Title:     tag.Title,
		Color:     tag.Color,
		State:     tag.State,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

func FormatComment(comment *models.Comment) *models.CommentView {
	if comment == nil {
		return nil
	}
	return &models.CommentView{
		ID:        formatID(comment.ID),
		Name:      comment.Name,
		Content:   comment.Content,
		AID:       formatID(comment.AID),
		CreatedAt: comment.CreatedAt,
	}
}

func FormatUser(user *models.User) *models.UserView {
	if user == nil {
		return nil
	}
	roles := user.Roles
	if len(roles) == 0 {
		roles = models.Roles{models.RoleUser}
	}
	return &models.UserView{
		ID:       formatID(user.ID),
		Username: user.Username,
		Roles:    roles,
	}
}
