package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskloop/task-tracker-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, mock
}

func TestTaskRepository_ListOrdersByIDAscending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{1}})

	rows := sqlmock.NewRows([]string{"id", "title", "description", "completed", "owner_id"}).
		AddRow(21, "First", "", false, 7).
		AddRow(34, "Second", "", true, 7)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE .+ ORDER BY id ASC`).
		WillReturnRows(rows)

	tasks, err := repo.List(TaskFilter{Cursor: 20, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, []uint64{21, 34}, taskIDs(tasks))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_FindByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{1}})

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE "tasks"\."id" = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_CreateChecksExistenceBeforeInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db, &stubGenerator{ids: []uint64{9}})

	// The pre-insert existence check runs before anything is written.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "tasks" WHERE id = .+`).
		WillReturnError(assert.AnError)

	err := repo.Create(&models.Task{Title: "Probe", OwnerID: 7})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
