package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
}

// UpdateTaskRequest ฟิลด์ optional เป็น pointer - nil = ไม่แก้
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	UserID      uuid.UUID  `json:"user"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskFilter เงื่อนไขจาก query string ของ list (scope เป็นของ requester เสมอ)
type TaskFilter struct {
	Completed *bool
	Priority  string
	Page      int
	Limit     int
}

// ========== Stats ==========

// TaskBrief projection ของ task ใน completion group
type TaskBrief struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

type CompletionGroup struct {
	Completed bool        `json:"completed"`
	Count     int         `json:"count"`
	Tasks     []TaskBrief `json:"tasks"`
}

type PriorityGroup struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

type TaskStatsResponse struct {
	CompletionStats []CompletionGroup `json:"completionStats"`
	PriorityStats   []PriorityGroup   `json:"priorityStats"`
}
