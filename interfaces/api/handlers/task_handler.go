package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/services"
	"taskboard-api/pkg/logger"
	"taskboard-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func parseTaskID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// CreateTask POST /api/tasks
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.Create(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Task creation failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// GetTasks GET /api/tasks?completed=&priority=&page=&limit=
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := &dto.TaskFilter{
		Priority: c.Query("priority"),
		Page:     1,
		Limit:    10,
	}

	if completedStr := c.Query("completed"); completedStr != "" {
		completed := completedStr == "true"
		filter.Completed = &completed
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	tasks, total, err := h.taskService.List(ctx, user.ID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to retrieve tasks", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	pagination := utils.NewPagination(filter.Page, filter.Limit, total)

	return utils.ListResponse(c, dto.TasksToTaskResponses(tasks), len(tasks), pagination)
}

// GetTask GET /api/tasks/:id
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ID format")
	}

	task, err := h.taskService.Get(ctx, taskID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return utils.NotFoundResponse(c, "Task not found")
		case errors.Is(err, services.ErrNotOwner):
			return utils.ForbiddenResponse(c, "Not authorized to access this task")
		default:
			logger.ErrorContext(ctx, "Failed to get task", "task_id", taskID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// UpdateTask PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ID format")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.Update(ctx, taskID, user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return utils.NotFoundResponse(c, "Task not found")
		case errors.Is(err, services.ErrNotOwner):
			return utils.ForbiddenResponse(c, "Not authorized to update this task")
		default:
			logger.ErrorContext(ctx, "Task update failed", "task_id", taskID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// DeleteTask DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ID format")
	}

	if err := h.taskService.Delete(ctx, taskID, user.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return utils.NotFoundResponse(c, "Task not found")
		case errors.Is(err, services.ErrNotOwner):
			return utils.ForbiddenResponse(c, "Not authorized to delete this task")
		default:
			logger.ErrorContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.SuccessResponse(c, fiber.Map{})
}

// GetTaskStats GET /api/tasks/stats
func (h *TaskHandler) GetTaskStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.taskService.Stats(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to aggregate task stats", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, stats)
}
