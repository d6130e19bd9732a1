package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/models"
)

// TaskService ทุก operation ที่อ้าง task รายตัวตรวจ existence ก่อน ownership
// (absent -> ErrTaskNotFound, present แต่ไม่ใช่ของ requester -> ErrNotOwner)
type TaskService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	Get(ctx context.Context, taskID, requesterID uuid.UUID) (*models.Task, error)
	List(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilter) ([]*models.Task, int64, error)
	Update(ctx context.Context, taskID, requesterID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, taskID, requesterID uuid.UUID) error
	Stats(ctx context.Context, ownerID uuid.UUID) (*dto.TaskStatsResponse, error)
}
