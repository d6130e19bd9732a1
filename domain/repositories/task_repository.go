package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// List คืน tasks ของ owner ตาม filter เรียงใหม่สุดก่อน
	List(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilter) ([]*models.Task, error)
	Count(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilter) (int64, error)
	// ListAll คืน tasks ทั้งหมดของ owner (สำหรับ stats aggregation)
	ListAll(ctx context.Context, ownerID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
