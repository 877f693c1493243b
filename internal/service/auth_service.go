package service

import (
	"context"
	"english_learning_backend/internal/config"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
	"english_learning_backend/pkg/logger"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrTokenRevoked = errors.New("token has been revoked")

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthService struct {
	UserRepo UserStore
	Sessions TokenRevoker
	Cfg      *config.Config
}

func NewAuthService(userRepo UserStore, sessions TokenRevoker, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Sessions: sessions,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if s.UserRepo.GetByEmail(ctx, email) != nil {
		return nil, util.ErrEmailRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         model.RoleUser,
		Level:        model.LevelA1,
	}
	if !s.UserRepo.Create(ctx, user) {
		// lost a race on the unique email index
		if s.UserRepo.GetByEmail(ctx, email) != nil {
			return nil, util.ErrEmailRegistered
		}
		return nil, util.ErrPersistFailed
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, *util.Claims, *model.User, error) {
	user := s.UserRepo.GetByEmail(ctx, req.Email)
	if user == nil {
		return "", nil, nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, nil, util.ErrInvalidCredentials
	}

	token, claims, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, nil, err
	}
	return token, claims, user, nil
}

// Logout revokes the token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	return s.Sessions.Revoke(ctx, claims.ID, claims.TTL())
}

// Authenticate parses a token and rejects it when it was revoked. A revocation
// store outage is logged and does not lock users out.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*util.Claims, error) {
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}
	if s.Sessions == nil || claims.ID == "" {
		return claims, nil
	}

	revoked, err := s.Sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.Log.Warn("revocation check failed", zap.String("user_id", claims.UserID), zap.Error(err))
		return claims, nil
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}
