package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskboard-api/pkg/logger"
	"taskboard-api/pkg/utils"
)

// ErrorHandler แปลง error ที่หลุดจาก handler เป็น envelope เดียวกัน
// รายละเอียด error โชว์เฉพาะนอก production
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		} else if !production {
			message = err.Error()
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)

		return utils.ErrorResponse(c, code, message)
	}
}
