package repository

import (
	"errors"

	"github.com/taskloop/task-tracker-api/internal/database"
	"github.com/taskloop/task-tracker-api/internal/identifier"
	"github.com/taskloop/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// maxIDAttempts bounds how often Create re-generates after an id collision.
const maxIDAttempts = 5

// ErrIDExhausted is returned when Create cannot allocate an unused identifier.
var ErrIDExhausted = errors.New("task repository: could not allocate a unique task id")

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db  *gorm.DB
	ids identifier.Generator
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB, ids identifier.Generator) TaskRepository {
	return &GormTaskRepository{db: db, ids: ids}
}

// Create assigns a server-side identifier seeded with the task's title and
// description, then inserts the task. The generator does not guarantee
// uniqueness, so an existence check runs before every insert and a colliding
// id is simply re-generated.
func (r *GormTaskRepository) Create(task *models.Task) error {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := r.ids.Generate(task.Title + task.Description)

		var count int64
		if err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		task.ID = id
		return r.db.Create(task).Error
	}

	return ErrIDExhausted
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks past the cursor, ordered by id ascending
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}

	query := r.db.Scopes(database.CursorPage(filter.Cursor, filter.Limit))
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}
