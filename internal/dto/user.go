package dto

import (
	"github.com/taskloop/task-tracker-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    uint64   `json:"id"`
	Tasks []uint64 `json:"tasks"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	tasks := make([]uint64, len(user.Tasks))
	copy(tasks, user.Tasks)

	return UserDTO{
		ID:    user.ID,
		Tasks: tasks,
	}
}
