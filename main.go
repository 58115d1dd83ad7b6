package main

import (
	"github.com/sealoong/blogserver/config"
	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/routes"
	"github.com/sealoong/blogserver/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Tag{},
		&models.Article{},
		&models.Comment{},
		&models.UploadedFile{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
