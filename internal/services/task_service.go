package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskloop/task-tracker-api/internal/constants"
	"github.com/taskloop/task-tracker-api/internal/models"
	"github.com/taskloop/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrOwnerNotFound = errors.New("owner not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleEmpty    = errors.New("title cannot be empty")
	ErrInvalidFilter = errors.New("filter must be one of all, completed, incompleted")
)

// OwnerLinkError reports a task that was persisted but whose id could not be
// appended to the owner's task list. The task itself is durable; only the
// linkage write needs to be retried.
type OwnerLinkError struct {
	Task *models.Task
	Err  error
}

func (e *OwnerLinkError) Error() string {
	return fmt.Sprintf("task %d created but not linked to user %d: %v", e.Task.ID, e.Task.OwnerID, e.Err)
}

func (e *OwnerLinkError) Unwrap() error {
	return e.Err
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	OwnerID     uint64
}

// ListTasksInput represents cursor and filter parameters for listing tasks
type ListTasksInput struct {
	Limit  int
	Cursor uint64
	Filter string
}

// UpdateTaskInput represents input for partially updating a task. Nil fields
// were not supplied and leave the stored value unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	UpdatedAt   *time.Time
}

// CreateTask validates the owner, persists the task and appends its id to the
// owner's task list. The two writes are not atomic: when the owner save fails
// after the task insert succeeded, the task is kept and the failure is
// surfaced as an OwnerLinkError instead of being rolled back.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	owner, err := s.userRepo.FindByID(input.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}

	now := time.Now()
	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		OwnerID:     owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	owner.Tasks = append(owner.Tasks, task.ID)
	if err := s.userRepo.Save(owner); err != nil {
		return task, &OwnerLinkError{Task: task, Err: err}
	}

	return task, nil
}

// ListTasks returns a page of tasks with ids past the cursor, ordered by id
// ascending and optionally restricted by completion state.
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, error) {
	limit := input.Limit
	if limit < constants.MinPageLimit {
		limit = constants.DefaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}

	filter := repository.TaskFilter{
		Cursor: input.Cursor,
		Limit:  limit,
	}

	switch input.Filter {
	case "", constants.FilterAll:
	case constants.FilterCompleted:
		completed := true
		filter.Completed = &completed
	case constants.FilterIncompleted:
		completed := false
		filter.Completed = &completed
	default:
		return nil, ErrInvalidFilter
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// GetTask returns a task by id
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// UpdateTask applies the supplied fields to an existing task. Identifier,
// creation time and ownership are never touched; UpdatedAt is always
// refreshed with the supplied timestamp or the current time.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if input.UpdatedAt != nil {
		task.UpdatedAt = *input.UpdatedAt
	} else {
		task.UpdatedAt = time.Now()
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}
