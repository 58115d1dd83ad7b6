package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sealoong/blogserver/config"
	"github.com/sealoong/blogserver/controllers"
	"github.com/sealoong/blogserver/middleware"
	"github.com/sealoong/blogserver/repositories"
	"github.com/sealoong/blogserver/services"
	"github.com/sealoong/blogserver/utils"
)

// SetupRouter wires repositories, services, controllers and middlewares.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.GinLogger(), utils.GinRecovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	tagRepo := repositories.NewTagRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	userRepo := repositories.NewUserRepository(db)
	fileRepo := repositories.NewFileRepository(db)

	articleService := services.NewArticleService(articleRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo)
	authService := services.NewAuthService(userRepo, cfg)
	fileService := services.NewFileService(fileRepo, cfg)

	articleController := controllers.NewArticleController(articleService, tagService, commentService)
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(authService)
	fileController := controllers.NewFileController(fileService)

	r.Static("/uploads", "./"+cfg.UploadDir)

	// Designated passthrough: no envelope.
	r.GET("/base/content", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": 200})
	})

	article := r.Group("/article")
	article.GET("", articleController.List)
	article.GET("/tag", articleController.ListTags)
	article.POST("/tag", articleController.CreateTag)
	article.DELETE("/tag", middleware.AuthRequired(), articleController.DeleteTag)
	article.POST("/top", middleware.AuthRequired(), articleController.UpdateTop)
	article.GET("/:id", articleController.Detail)
	article.POST("", middleware.AuthRequired(), articleController.Create)
	article.PATCH("/:id", middleware.AuthRequired(), articleController.Update)
	article.DELETE("/:id", middleware.AuthRequired(), articleController.Delete)
	article.POST("/:id/like", articleController.Like)
	article.GET("/:id/comment", articleController.ListComments)
	article.POST("/:id/comment", articleController.CreateComment)

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware())
	auth.POST("/login", authController.Login)
	auth.POST("/logout", authController.Logout)

	user := r.Group("/user")
	user.POST("/register", middleware.RateLimitMiddleware(), userController.Register)
	user.GET("/info", middleware.AuthRequired(), userController.Info)

	file := r.Group("/file")
	file.POST("/upload", fileController.Upload)
	file.POST("/upload-files", fileController.UploadFiles)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "接口不存在")
	})

	return r
}
