package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ========== Response Structures ==========

// Response envelope มาตรฐาน: {success, data?, error?}
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// AuthResponseBody สำหรับ register/login/password (token อยู่ top-level)
type AuthResponseBody struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    any    `json:"user,omitempty"`
}

// ListResponseBody สำหรับ list พร้อม count + pagination window
type ListResponseBody struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	Pagination Pagination `json:"pagination"`
	Data       any        `json:"data"`
}

type PageInfo struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Next *PageInfo `json:"next,omitempty"`
	Prev *PageInfo `json:"prev,omitempty"`
}

// NewPagination สร้าง next/prev descriptor เฉพาะตอนที่มีหน้าถัดไป/ก่อนหน้าจริง
func NewPagination(page, limit int, total int64) Pagination {
	p := Pagination{}

	if int64(page*limit) < total {
		p.Next = &PageInfo{Page: page + 1, Limit: limit}
	}
	if (page-1)*limit > 0 {
		p.Prev = &PageInfo{Page: page - 1, Limit: limit}
	}

	return p
}

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func AuthResponse(c *fiber.Ctx, statusCode int, token string, user any) error {
	return c.Status(statusCode).JSON(AuthResponseBody{
		Success: true,
		Token:   token,
		User:    user,
	})
}

func ListResponse(c *fiber.Ctx, data any, count int, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(ListResponseBody{
		Success:    true,
		Count:      count,
		Pagination: pagination,
		Data:       data,
	})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, fieldErrors any) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Success: false,
		Error:   "Validation failed",
		Errors:  fieldErrors,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Not authorized to access this route"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message)
}

func ForbiddenResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponse(c, fiber.StatusForbidden, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Server Error")
}
