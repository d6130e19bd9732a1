package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/models"
	"taskboard-api/domain/repositories"
	"taskboard-api/domain/services"
	"taskboard-api/pkg/config"
	"taskboard-api/pkg/logger"
	"taskboard-api/pkg/utils"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	jwtCfg   config.JWTConfig
}

func NewUserService(userRepo repositories.UserRepository, jwtCfg config.JWTConfig) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

// normalizeEmail trim + lowercase ก่อนเก็บ/ค้นหา เพื่อให้ uniqueness ตรงกันเสมอ
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.ErrorContext(ctx, "Failed to check existing email", "error", err)
		return "", nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Email already exists", "email", email)
		return "", nil, services.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return "", nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  string(hashedPassword),
		Role:      "user",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return "", nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", email)
		return "", nil, services.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredential
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "User not found for profile update", "user_id", userID)
		return nil, err
	}

	if req.Name != "" {
		user.Name = strings.TrimSpace(req.Name)
	}

	if req.Email != "" {
		email := normalizeEmail(req.Email)
		if email != user.Email {
			existing, err := s.userRepo.GetByEmail(ctx, email)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if existing != nil {
				logger.WarnContext(ctx, "Profile update failed - email taken", "user_id", userID, "email", email)
				return nil, services.ErrDuplicateEmail
			}
		}
		user.Email = email
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, userID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Profile updated", "user_id", userID)

	return user, nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, userID uuid.UUID, req *dto.UpdatePasswordRequest) (string, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "User not found for password update", "user_id", userID)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		logger.WarnContext(ctx, "Password update failed - wrong current password", "user_id", userID)
		return "", services.ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "user_id", userID, "error", err)
		return "", err
	}

	user.Password = string(hashedPassword)
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, userID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update password", "user_id", userID, "error", err)
		return "", err
	}

	// token เดิมที่ออกก่อนเปลี่ยน password ยังใช้ได้จนหมดอายุ (stateless - ไม่มี revocation)
	token, err := s.issueToken(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", userID, "error", err)
		return "", err
	}

	logger.InfoContext(ctx, "Password updated", "user_id", userID)

	return token, nil
}

func (s *UserServiceImpl) issueToken(userID uuid.UUID) (string, error) {
	return utils.GenerateToken(userID, s.jwtCfg.Secret, s.jwtCfg.ExpireDays)
}
