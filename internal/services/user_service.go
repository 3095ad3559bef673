package services

import (
	"errors"
	"fmt"

	"github.com/taskloop/task-tracker-api/internal/identifier"
	"github.com/taskloop/task-tracker-api/internal/models"
	"github.com/taskloop/task-tracker-api/internal/repository"
)

var ErrUserAlreadyExists = errors.New("user already exists")

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
	ids      identifier.Generator
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, ids identifier.Generator) *UserService {
	return &UserService{
		userRepo: userRepo,
		ids:      ids,
	}
}

// CreateUser creates a user with an empty task list. A requested id (nil or
// zero means absent) is checked against existing users first; a generated id
// is inserted without that check, accepting the unseeded generator's
// collision odds as-is.
func (s *UserService) CreateUser(requestedID *uint64) (*models.User, error) {
	var id uint64
	if requestedID != nil && *requestedID != 0 {
		exists, err := s.userRepo.ExistsByID(*requestedID)
		if err != nil {
			return nil, fmt.Errorf("failed to check user id: %w", err)
		}
		if exists {
			return nil, ErrUserAlreadyExists
		}
		id = *requestedID
	} else {
		id = s.ids.Generate("")
	}

	user := &models.User{
		ID:    id,
		Tasks: models.TaskIDList{},
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
