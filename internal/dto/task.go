package dto

import (
	"time"

	"github.com/taskloop/task-tracker-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	BelongsTo   uint64    `json:"belongs_to"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse represents a cursor-paginated list of tasks. NextCursor is
// the largest id of the page; passing it as the next request's offset
// continues the listing without skips or duplicates.
type TaskListResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	Limit      int       `json:"limit"`
	NextCursor uint64    `json:"next_cursor"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		BelongsTo:   task.OwnerID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskListResponse converts a page of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, limit int) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	var nextCursor uint64
	if len(tasks) > 0 {
		// Tasks are ordered by id ascending, so the last one carries the cursor.
		nextCursor = tasks[len(tasks)-1].ID
	}

	return TaskListResponse{
		Tasks:      items,
		Limit:      limit,
		NextCursor: nextCursor,
	}
}
