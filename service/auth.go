package service

import (
	"Circle/config"
	"Circle/dao"
	"Circle/models"
	"Circle/pkg/jwt"
	"Circle/pkg/response"
	"Circle/pkg/snowflake"
	"Circle/pkg/strutil"
	"Circle/types"
	"context"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher 口令散列与校验，认证机制与用户资料解耦
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func (BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenResponse, error)
}

type AuthService struct {
	Config   *config.Config
	UserDAO  *dao.Users
	StatsDAO *dao.UserStatsDAO
	Hasher   PasswordHasher
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	handle := req.Handle
	if handle == "" {
		handle = strutil.GenHandle(s.Config.Jwt.Secret, snowflake.GenID())
	} else {
		exist, err := s.UserDAO.IsExist(ctx, "handle = ?", handle)
		if err != nil {
			return nil, err
		}
		if exist {
			return nil, response.NewError(http.StatusBadRequest, "该 handle 已被占用")
		}
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Handle:       handle,
		Nickname:     req.Nickname,
		IsPrivate:    req.Private,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, response.NewError(http.StatusBadRequest, "注册失败，请换个 handle 重试")
	}
	if err := s.StatsDAO.EnsureRow(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UserDAO.GetByHandle(ctx, req.Handle)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.Hasher.Verify(user.PasswordHash, req.Password) {
		return nil, response.NewError(http.StatusUnauthorized, "账号或密码错误")
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), "refresh", refreshToken)
	if err != nil {
		return nil, response.NewError(http.StatusUnauthorized, "refresh token 无效")
	}

	user, err := s.UserDAO.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewError(http.StatusUnauthorized, "用户不存在")
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *models.User) (*types.TokenResponse, error) {
	secret := []byte(s.Config.Jwt.Secret)

	access, err := jwt.GenerateToken(secret, user.ID, user.IsAdmin, "access", s.Config.Jwt.AccessTTL())
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, user.ID, user.IsAdmin, "refresh", s.Config.Jwt.RefreshTTL())
	if err != nil {
		return nil, err
	}

	return &types.TokenResponse{
		UserID:       user.ID,
		Handle:       user.Handle,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
