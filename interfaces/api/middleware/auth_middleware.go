package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard-api/domain/services"
	"taskboard-api/pkg/logger"
	"taskboard-api/pkg/utils"
)

// Protected ตรวจ token แล้ว resolve user จาก store ก่อนเข้า Private handler
// รับ token จาก Authorization header หรือ cookie "token"
func Protected(userService services.UserService, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		token := utils.ExtractToken(c)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Not authorized to access this route")
		}

		userID, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(ctx, "Token validation failed", "error", err)
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Your token has expired. Please log in again.")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token. Please log in again.")
			}
		}

		// token ที่ verify ผ่านแต่ user หายไปแล้ว ถือว่า unauthenticated
		user, err := userService.GetProfile(ctx, userID)
		if err != nil {
			logger.WarnContext(ctx, "Token user not found", "user_id", userID)
			return utils.UnauthorizedResponse(c, "Not authorized to access this route")
		}

		c.Locals("user", &utils.UserContext{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})

		return c.Next()
	}
}
