package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TaskIDList is the ordered list of task ids owned by a user, stored as a
// JSON text column. The list only ever grows; task deletion is unsupported.
type TaskIDList []uint64

// Value implements driver.Valuer.
func (l TaskIDList) Value() (driver.Value, error) {
	if l == nil {
		l = TaskIDList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task id list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *TaskIDList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = TaskIDList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported task id list column type %T", value)
	}
}

type User struct {
	ID        uint64     `gorm:"primarykey;autoIncrement:false" json:"id"`
	Tasks     TaskIDList `gorm:"type:text;not null" json:"tasks"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
