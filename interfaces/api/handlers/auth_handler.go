package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/services"
	"taskboard-api/pkg/config"
	"taskboard-api/pkg/logger"
	"taskboard-api/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
	jwtCfg      config.JWTConfig
	production  bool
}

func NewAuthHandler(userService services.UserService, jwtCfg config.JWTConfig, production bool) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtCfg:      jwtCfg,
		production:  production,
	}
}

// setTokenCookie ส่ง session token เป็น httpOnly cookie ด้วย (secure เฉพาะ production)
func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(time.Duration(h.jwtCfg.CookieExpireDays) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.production,
	})
}

// clearTokenCookie แทน cookie ด้วย sentinel ที่หมดอายุทันที
// token เดิมยัง valid ถ้า replay - ข้อจำกัดของ stateless token ที่ยอมรับไว้
func (h *AuthHandler) clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "none",
		Expires:  time.Now().Add(10 * time.Second),
		HTTPOnly: true,
	})
}

// Register POST /api/users/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	token, user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return utils.BadRequestResponse(c, "User already exists")
		}
		logger.ErrorContext(ctx, "Registration failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	h.setTokenCookie(c, token)

	return utils.AuthResponse(c, fiber.StatusCreated, token, dto.UserToUserSummary(user))
}

// Login POST /api/users/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	req.Email = strings.TrimSpace(req.Email)

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredential) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.ErrorContext(ctx, "Login failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	h.setTokenCookie(c, token)

	return utils.AuthResponse(c, fiber.StatusOK, token, dto.UserToUserSummary(user))
}

// GetMe GET /api/users/me
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		logger.WarnContext(ctx, "Profile not found", "user_id", user.ID)
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToProfileResponse(profile))
}

// Logout GET /api/users/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearTokenCookie(c)
	return utils.SuccessResponse(c, fiber.Map{})
}

// UpdateProfile PUT /api/users/profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	updated, err := h.userService.UpdateProfile(ctx, user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			return utils.BadRequestResponse(c, "Duplicate field value entered")
		case errors.Is(err, services.ErrUserNotFound):
			return utils.NotFoundResponse(c, "User not found")
		default:
			logger.ErrorContext(ctx, "Profile update failed", "user_id", user.ID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.SuccessResponse(c, dto.UserToUserSummary(updated))
}

// UpdatePassword PUT /api/users/password
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	token, err := h.userService.UpdatePassword(ctx, user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			return utils.UnauthorizedResponse(c, "Current password is incorrect")
		case errors.Is(err, services.ErrUserNotFound):
			return utils.NotFoundResponse(c, "User not found")
		default:
			logger.ErrorContext(ctx, "Password update failed", "user_id", user.ID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	h.setTokenCookie(c, token)

	return utils.AuthResponse(c, fiber.StatusOK, token, nil)
}
