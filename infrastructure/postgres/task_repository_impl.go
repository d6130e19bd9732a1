package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/models"
	"taskboard-api/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// applyFilter สร้าง query จาก owner scope + optional filters
func (r *TaskRepositoryImpl) applyFilter(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", ownerID)

	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	return query
}

func (r *TaskRepositoryImpl) List(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilter) ([]*models.Task, error) {
	var tasks []*models.Task

	offset := (filter.Page - 1) * filter.Limit
	err := r.applyFilter(ctx, ownerID, filter).
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepositoryImpl) Count(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilter) (int64, error) {
	var count int64
	err := r.applyFilter(ctx, ownerID, filter).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) ListAll(ctx context.Context, ownerID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id uuid.UUID, task *models.Task) error {
	// Save ทั้ง record เพื่อให้ field ที่เป็น zero value (เช่น completed=false) ถูกเขียนด้วย
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}
