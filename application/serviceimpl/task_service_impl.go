package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/models"
	"taskboard-api/domain/repositories"
	"taskboard-api/domain/services"
	"taskboard-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

func (s *TaskServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
		UserID:      ownerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", ownerID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", ownerID)

	return task, nil
}

// ensureOwner เทียบ owner กับ requester ตรงๆ
func ensureOwner(task *models.Task, requesterID uuid.UUID) error {
	if task.UserID != requesterID {
		return services.ErrNotOwner
	}
	return nil
}

// getOwned ตรวจ existence ก่อน ownership เสมอ (404 ก่อน 403)
func (s *TaskServiceImpl) getOwned(ctx context.Context, taskID, requesterID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}

	if err := ensureOwner(task, requesterID); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskServiceImpl) Get(ctx context.Context, taskID, requesterID uuid.UUID) (*models.Task, error) {
	return s.getOwned(ctx, taskID, requesterID)
}

func (s *TaskServiceImpl) List(ctx context.Context, ownerID uuid.UUID, filter *dto.TaskFilter) ([]*models.Task, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	total, err := s.taskRepo.Count(ctx, ownerID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count tasks", "user_id", ownerID, "error", err)
		return nil, 0, err
	}

	tasks, err := s.taskRepo.List(ctx, ownerID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", ownerID, "error", err)
		return nil, 0, err
	}

	return tasks, total, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, taskID, requesterID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.getOwned(ctx, taskID, requesterID)
	if err != nil {
		return nil, err
	}

	task.Title = req.Title
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)

	return task, nil
}

func (s *TaskServiceImpl) Delete(ctx context.Context, taskID, requesterID uuid.UUID) error {
	if _, err := s.getOwned(ctx, taskID, requesterID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)

	return nil
}

// Stats group ตาม completed (พร้อม projection title/priority) และตาม priority
// แต่ละชุดเรียงตาม group key จากน้อยไปมาก
func (s *TaskServiceImpl) Stats(ctx context.Context, ownerID uuid.UUID) (*dto.TaskStatsResponse, error) {
	tasks, err := s.taskRepo.ListAll(ctx, ownerID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load tasks for stats", "user_id", ownerID, "error", err)
		return nil, err
	}

	byCompleted := map[bool][]dto.TaskBrief{}
	byPriority := map[string]int{}

	for _, task := range tasks {
		byCompleted[task.Completed] = append(byCompleted[task.Completed], dto.TaskBrief{
			Title:    task.Title,
			Priority: task.Priority,
		})
		byPriority[task.Priority]++
	}

	stats := &dto.TaskStatsResponse{
		CompletionStats: []dto.CompletionGroup{},
		PriorityStats:   []dto.PriorityGroup{},
	}

	// false ก่อน true
	for _, completed := range []bool{false, true} {
		if briefs, ok := byCompleted[completed]; ok {
			stats.CompletionStats = append(stats.CompletionStats, dto.CompletionGroup{
				Completed: completed,
				Count:     len(briefs),
				Tasks:     briefs,
			})
		}
	}

	priorities := make([]string, 0, len(byPriority))
	for priority := range byPriority {
		priorities = append(priorities, priority)
	}
	sort.Strings(priorities)

	for _, priority := range priorities {
		stats.PriorityStats = append(stats.PriorityStats, dto.PriorityGroup{
			Priority: priority,
			Count:    byPriority[priority],
		})
	}

	return stats, nil
}
