package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"taskboard-api/pkg/config"
	"taskboard-api/pkg/utils"
)

// RateLimitMiddleware จำกัด request ต่อ IP บน /api
// storage เป็น nil = in-memory, หรือส่ง Redis-backed storage มาเพื่อแชร์ข้าม instance
func RateLimitMiddleware(cfg config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	window := time.Duration(cfg.WindowMinutes) * time.Minute

	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: window,
		Storage:    storage,
		LimitReached: func(c *fiber.Ctx) error {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests,
				"Too many requests from this IP, please try again after 10 minutes")
		},
	})
}
