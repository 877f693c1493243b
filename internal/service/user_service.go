package service

import (
	"context"
	"english_learning_backend/internal/config"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
	"english_learning_backend/pkg/logger"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Profile is the public view of an account.
// swagger:model Profile
type Profile struct {
	UserID             string         `json:"userId"`
	Email              string         `json:"email"`
	FullName           string         `json:"fullName"`
	Bio                string         `json:"bio"`
	AvatarURL          string         `json:"avatarUrl"`
	Role               model.UserRole `json:"role"`
	Points             int            `json:"points"`
	Level              string         `json:"level"`
	VocabularyLearned  int            `json:"vocabularyLearned"`
	GrammarLearned     int            `json:"grammarLearned"`
	ExercisesCompleted int            `json:"exercisesCompleted"`
	CreatedAt          time.Time      `json:"createdAt"`
	LastSeen           time.Time      `json:"lastSeen"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required,max=100"`
	Bio      string `json:"bio" binding:"max=500"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UpdateRoleRequest struct {
	Role model.UserRole `json:"role" binding:"required,oneof=user admin"`
}

type UserService struct {
	UserRepo     UserStore
	ProgressRepo ProgressStore
	Storage      *StorageService
	Cfg          *config.Config
	Now          func() time.Time
}

func NewUserService(userRepo UserStore, progressRepo ProgressStore, storage *StorageService, cfg *config.Config) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		Storage:      storage,
		Cfg:          cfg,
		Now:          time.Now,
	}
}

// AvatarURL resolves the stored avatar, tagging it with its version so
// clients drop cached copies after an upload.
func (s *UserService) AvatarURL(user *model.User) string {
	if user.Avatar == "" {
		return s.Cfg.Storage.DefaultAvatar
	}
	return fmt.Sprintf("%s?v=%d", s.Storage.GetURL(user.Avatar), user.AvatarVersion)
}

func (s *UserService) ProfileOf(user *model.User) *Profile {
	return &Profile{
		UserID:             user.UserID,
		Email:              user.Email,
		FullName:           user.FullName,
		Bio:                user.Bio,
		AvatarURL:          s.AvatarURL(user),
		Role:               user.Role,
		Points:             user.Points,
		Level:              user.Level,
		VocabularyLearned:  user.VocabularyLearned,
		GrammarLearned:     user.GrammarLearned,
		ExercisesCompleted: user.ExercisesCompleted,
		CreatedAt:          user.CreatedAt,
		LastSeen:           user.LastSeen,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user := s.UserRepo.GetByUserID(ctx, userID)
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	return s.ProfileOf(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*Profile, error) {
	if !s.UserRepo.UpdateProfile(ctx, userID, strings.TrimSpace(req.FullName), strings.TrimSpace(req.Bio)) {
		if s.UserRepo.GetByUserID(ctx, userID) == nil {
			return nil, util.ErrUserNotFound
		}
		return nil, util.ErrPersistFailed
	}
	return s.GetProfile(ctx, userID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user := s.UserRepo.GetByUserID(ctx, userID)
	if user == nil {
		return util.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if !s.UserRepo.UpdatePassword(ctx, userID, string(hashed)) {
		return util.ErrPersistFailed
	}
	return nil
}

// UploadAvatar stores a new image and points the user at it. The previous
// object is removed afterwards on a best-effort basis.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, header *multipart.FileHeader) (*Profile, error) {
	user := s.UserRepo.GetByUserID(ctx, userID)
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !slices.Contains(util.AllowedAvatarExtensions, ext) {
		return nil, util.ErrUnsupportedFile
	}
	if header.Size > s.Cfg.Storage.MaxAvatarBytes {
		return nil, util.ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mtype.String(), util.MimeImage) {
		return nil, util.ErrUnsupportedFile
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	filename := path.Join("avatars", userID, uuid.NewString()+ext)
	if _, err := s.Storage.Upload(ctx, filename, file, header.Size, mtype.String()); err != nil {
		return nil, err
	}

	version := s.Now().Unix()
	if !s.UserRepo.UpdateAvatar(ctx, userID, filename, version) {
		_ = s.Storage.Delete(ctx, filename)
		return nil, util.ErrPersistFailed
	}

	if user.Avatar != "" && user.Avatar != filename {
		if err := s.Storage.Delete(ctx, user.Avatar); err != nil {
			logger.Log.Warn("failed to remove previous avatar", zap.String("user_id", userID), zap.Error(err))
		}
	}

	user.Avatar = filename
	user.AvatarVersion = version
	return s.ProfileOf(user), nil
}

func (s *UserService) ListUsers(ctx context.Context, search string, page, pageSize int) *util.PageResponse {
	page, pageSize = normalizePage(page, pageSize)
	users, total := s.UserRepo.List(ctx, strings.TrimSpace(search), page, pageSize)
	profiles := make([]*Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, s.ProfileOf(&users[i]))
	}
	return &util.PageResponse{List: profiles, Total: total, Page: page, PageSize: pageSize}
}

// GetUser resolves key as a user id, an email or a document id.
func (s *UserService) GetUser(ctx context.Context, key string) (*Profile, error) {
	user := s.UserRepo.FindByAnyKey(ctx, key)
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	return s.ProfileOf(user), nil
}

func (s *UserService) UpdateRole(ctx context.Context, key string, role model.UserRole) (*Profile, error) {
	user := s.UserRepo.FindByAnyKey(ctx, key)
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	if !s.UserRepo.UpdateRole(ctx, user.UserID, role) {
		return nil, util.ErrPersistFailed
	}
	user.Role = role
	return s.ProfileOf(user), nil
}

// DeleteUser removes the account together with its progress and avatar.
func (s *UserService) DeleteUser(ctx context.Context, key string) error {
	user := s.UserRepo.FindByAnyKey(ctx, key)
	if user == nil {
		return util.ErrUserNotFound
	}
	if !s.UserRepo.Delete(ctx, user.UserID) {
		return util.ErrPersistFailed
	}

	s.ProgressRepo.Delete(ctx, user.UserID)
	if user.Avatar != "" {
		if err := s.Storage.Delete(ctx, user.Avatar); err != nil {
			logger.Log.Warn("failed to remove avatar of deleted user", zap.String("user_id", user.UserID), zap.Error(err))
		}
	}
	return nil
}
