package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/services"
	"github.com/sealoong/blogserver/utils"
)

// AuthController handles token issuance.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login verifies credentials and returns the identity plus a signed token.
func (a *AuthController) Login(ctx *gin.Context) {
	var req models.CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "请求参数非法")
		return
	}

	result, err := a.auth.Login(req)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, result)
}

// Logout is stateless: the server holds no session and keeps no token
// blacklist; discarding the token is the caller's responsibility.
func (a *AuthController) Logout(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"message": "登出成功，请在客户端删除本地存储的 token",
	})
}
