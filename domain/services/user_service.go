package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/models"
)

type UserService interface {
	// Register สร้าง user ใหม่พร้อม token (email ซ้ำ -> ErrEmailTaken)
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	// Login ตรวจ credential แล้วออก token (ผิด -> ErrInvalidCredential)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
	// UpdatePassword ตรวจ password เดิมก่อน แล้วออก token ใหม่
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *dto.UpdatePasswordRequest) (string, error)
}
