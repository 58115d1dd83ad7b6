package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sealoong/blogserver/middleware"
	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/services"
	"github.com/sealoong/blogserver/utils"
)

// UserController handles account creation and identity echo.
type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// Register creates an account with a hashed password.
func (u *UserController) Register(ctx *gin.Context) {
	var req models.CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "请求参数非法")
		return
	}

	user, err := u.auth.Register(req)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, user)
}

// Info echoes the authenticated identity attached by the auth guard.
func (u *UserController) Info(ctx *gin.Context) {
	userID, _ := ctx.Get(middleware.ContextUserIDKey)
	username, _ := ctx.Get(middleware.ContextUsernameKey)
	rolesVal, _ := ctx.Get(middleware.ContextRolesKey)

	id, ok := userID.(uint)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}
	name, _ := username.(string)
	roles, _ := rolesVal.(models.Roles)
	if len(roles) == 0 {
		roles = models.Roles{models.RoleUser}
	}

	utils.Success(ctx, models.UserView{
		ID:       strconv.FormatUint(uint64(id), 10),
		Username: name,
		Roles:    roles,
	})
}
