package repository

import (
	"github.com/taskloop/task-tracker-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create persists a new task, assigning its identifier
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves a page of tasks matching the filter, ordered by id ascending
	List(filter TaskFilter) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error
}

// TaskFilter holds cursor and filtering options for listing tasks
type TaskFilter struct {
	// Cursor is the id of the last task the caller has seen; only tasks with
	// a strictly greater id are returned.
	Cursor    uint64
	Completed *bool
	Limit     int
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// ExistsByID reports whether a user with the given ID exists
	ExistsByID(id uint64) (bool, error)

	// Save persists changes to an existing user
	Save(user *models.User) error
}
