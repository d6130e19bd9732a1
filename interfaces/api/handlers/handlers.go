package handlers

import (
	"taskboard-api/domain/services"
	"taskboard-api/pkg/config"
)

// Services dependencies ที่ handlers ต้องใช้
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
	JWTConfig   config.JWTConfig
	Production  bool
}

// Handlers รวม HTTP handlers ทั้งหมด
type Handlers struct {
	AuthHandler *AuthHandler
	TaskHandler *TaskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler: NewAuthHandler(services.UserService, services.JWTConfig, services.Production),
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}
