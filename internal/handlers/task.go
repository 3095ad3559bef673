package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskloop/task-tracker-api/internal/dto"
	apierrors "github.com/taskloop/task-tracker-api/internal/errors"
	"github.com/taskloop/task-tracker-api/internal/middleware"
	"github.com/taskloop/task-tracker-api/internal/services"
	"github.com/taskloop/task-tracker-api/internal/utils"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns a page of tasks past the offset cursor
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetListParams(c)

	tasks, err := h.taskService.ListTasks(services.ListTasksInput{
		Limit:  params.Limit,
		Cursor: params.Cursor,
		Filter: params.Filter,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidFilter) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params.Limit))
}

// CreateTask creates a new task owned by an existing user
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		BelongsTo   struct {
			ID uint64 `json:"id" binding:"required"`
		} `json:"belongs_to" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     req.BelongsTo.ID,
	})
	if err != nil {
		var linkErr *services.OwnerLinkError
		switch {
		case errors.Is(err, services.ErrOwnerNotFound):
			apierrors.NotFound(c, "User not found")
		case errors.Is(err, services.ErrTitleRequired):
			apierrors.BadRequest(c, err.Error())
		case errors.As(err, &linkErr):
			// The task is durable; only the owner-list append failed.
			apierrors.InconsistentWrite(c, "Task created but not linked to its owner", gin.H{
				"task_id":   linkErr.Task.ID,
				"retryable": true,
			})
		default:
			apierrors.InternalError(c, "Failed to create task")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// GetTask returns the task loaded by the RequireTask middleware
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// UpdateTask partially updates an existing task. Only fields present in the
// request body are applied; an omitted field keeps its stored value.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	type UpdateTaskRequest struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Completed   *bool      `json:"completed"`
		UpdatedAt   *time.Time `json:"updated_at"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.taskService.UpdateTask(task.ID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		UpdatedAt:   req.UpdatedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrTitleEmpty):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update task")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated))
}
