package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskloop/task-tracker-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubGenerator returns a fixed sequence of ids, cycling when exhausted.
type stubGenerator struct {
	ids  []uint64
	next int
}

func (g *stubGenerator) Generate(seed string) uint64 {
	id := g.ids[g.next%len(g.ids)]
	g.next++
	return id
}

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Task{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func seedTask(t *testing.T, db *gorm.DB, id uint64, completed bool) {
	t.Helper()

	now := time.Now()
	err := db.Create(&models.Task{
		ID:        id,
		Title:     "Seeded Task",
		Completed: completed,
		OwnerID:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
	require.NoError(t, err)
}

func taskIDs(tasks []models.Task) []uint64 {
	ids := make([]uint64, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}

func TestTaskRepository_CreateAssignsGeneratedID(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{42}})

	task := &models.Task{Title: "Buy milk", Description: "2 liters", OwnerID: 1}
	err := repo.Create(task)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), task.ID)

	found, err := repo.FindByID(42)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", found.Title)
}

func TestTaskRepository_CreateRegeneratesOnCollision(t *testing.T) {
	db := setupRepoDB(t)
	seedTask(t, db, 5, false)

	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{5, 5, 7}})

	task := &models.Task{Title: "Another", OwnerID: 1}
	err := repo.Create(task)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), task.ID)
}

func TestTaskRepository_CreateGivesUpWhenIDsExhaust(t *testing.T) {
	db := setupRepoDB(t)
	seedTask(t, db, 5, false)

	// Every attempt collides with the seeded task.
	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{5}})

	err := repo.Create(&models.Task{Title: "Stuck", OwnerID: 1})
	assert.ErrorIs(t, err, ErrIDExhausted)
}

func TestTaskRepository_ListPagesByCursor(t *testing.T) {
	db := setupRepoDB(t)
	for _, id := range []uint64{10, 20, 30, 40} {
		seedTask(t, db, id, false)
	}
	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{1}})

	page, err := repo.List(TaskFilter{Cursor: 0, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint64{10, 20}, taskIDs(page))

	page, err = repo.List(TaskFilter{Cursor: 20, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint64{30, 40}, taskIDs(page))

	page, err = repo.List(TaskFilter{Cursor: 40, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestTaskRepository_ListFiltersByCompletion(t *testing.T) {
	db := setupRepoDB(t)
	seedTask(t, db, 10, false)
	seedTask(t, db, 20, true)
	seedTask(t, db, 30, false)
	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{1}})

	completed := true
	page, err := repo.List(TaskFilter{Cursor: 0, Limit: 10, Completed: &completed})
	require.NoError(t, err)
	assert.Equal(t, []uint64{20}, taskIDs(page))

	completed = false
	page, err = repo.List(TaskFilter{Cursor: 0, Limit: 10, Completed: &completed})
	require.NoError(t, err)
	assert.Equal(t, []uint64{10, 30}, taskIDs(page))
}

func TestTaskRepository_UpdatePersistsChanges(t *testing.T) {
	db := setupRepoDB(t)
	seedTask(t, db, 10, false)
	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{1}})

	task, err := repo.FindByID(10)
	require.NoError(t, err)

	task.Completed = true
	task.Title = "Done now"
	require.NoError(t, repo.Update(task))

	found, err := repo.FindByID(10)
	require.NoError(t, err)
	assert.True(t, found.Completed)
	assert.Equal(t, "Done now", found.Title)
}
