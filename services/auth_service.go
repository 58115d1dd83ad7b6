package services

import (
	"github.com/sealoong/blogserver/config"
	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/repositories"
	"github.com/sealoong/blogserver/utils"
)

// AuthService issues bearer tokens and manages account credentials.
type AuthService struct {
	users repositories.UserRepository
	cfg   config.AppConfig
}

func NewAuthService(users repositories.UserRepository, cfg config.AppConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Register creates an account with a bcrypt-hashed password and the default
// user role. Username uniqueness is enforced here, backed by the unique index.
func (s *AuthService) Register(req models.CredentialsRequest) (*models.UserView, error) {
	existing, err := s.users.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflict("用户名已存在")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
		Roles:    models.Roles{models.RoleUser},
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return FormatUser(user), nil
}

// Login verifies credentials and returns the identity with a signed token.
// The bcrypt verify runs the full comparison on hash mismatch; a plain string
// compare never happens.
func (s *AuthService) Login(req models.CredentialsRequest) (*models.LoginView, error) {
	user, err := s.users.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		return nil, utils.NewUnauthorized("用户名或密码错误")
	}

	token, err := utils.GenerateToken(s.cfg, user.ID, user.Username, user.Roles)
	if err != nil {
		return nil, err
	}
	view := FormatUser(user)
	return &models.LoginView{
		AccessToken: token,
		ID:          view.ID,
		Username:    view.Username,
		Roles:       view.Roles,
	}, nil
}
