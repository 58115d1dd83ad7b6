package models

import "time"

// Request payloads. Ids arrive as strings (the API id form) and are parsed
// and validated before any lookup.

type ListArticlesQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required"`
	Intro   string `json:"intro" binding:"required"`
	Content string `json:"content" binding:"required"`
	TagID   string `json:"tagid" binding:"required"`
	Img     string `json:"img"`
}

// UpdateArticleRequest uses pointers so that only supplied fields are merged.
type UpdateArticleRequest struct {
	Title   *string `json:"title"`
	Intro   *string `json:"intro"`
	Content *string `json:"content"`
	TagID   *string `json:"tagid"`
	Img     *string `json:"img"`
}

type UpdateArticleTopRequest struct {
	ID  string `json:"id" binding:"required"`
	Top *int   `json:"top" binding:"required"`
}

type CreateTagRequest struct {
	Title string `json:"title" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type DeleteTagRequest struct {
	ID string `json:"id" binding:"required"`
}

type CreateCommentRequest struct {
	Name    string `json:"name"`
	Content string `json:"content" binding:"required"`
}

type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// API views produced by the response shaper: primary keys stringified,
// internal bookkeeping stripped, tag references optionally embedded.

// TagEmbed is the denormalized tag copy embedded in article views.
type TagEmbed struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

type ArticleView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Intro     string    `json:"intro"`
	Content   string    `json:"content"`
	TagID     string    `json:"tagid"`
	Tag       *TagEmbed `json:"tag,omitempty"`
	State     int       `json:"state"`
	Top       int       `json:"top"`
	Watch     int       `json:"watch"`
	Likes     int       `json:"likes"`
	Img       string    `json:"img,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ArticleListView struct {
	List  []*ArticleView `json:"list"`
	Total int64          `json:"total"`
}

type TagView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Color     string    `json:"color"`
	State     int       `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	AID       string    `json:"aid"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Roles    Roles  `json:"roles"`
}

type LoginView struct {
	AccessToken string `json:"accessToken"`
	ID          string `json:"id"`
	Username    string `json:"username"`
	Roles       Roles  `json:"roles"`
}

type FileInfoView struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalname"`
	MimeType     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	Extension    string    `json:"extension"`
	UploadTime   time.Time `json:"uploadTime"`
	URL          string    `json:"url"`
}
