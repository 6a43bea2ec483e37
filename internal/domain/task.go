package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// ParseTaskStatus normalizes a raw status value to upper-case and reports
// whether it is one of the allowed statuses.
func ParseTaskStatus(value string) (TaskStatus, bool) {
	normalized := TaskStatus(strings.ToUpper(value))
	switch normalized {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return normalized, true
	}
	return normalized, false
}

// Task represents a unit of work owned by a single user. ProjectID is an
// optional association maintained on the task side only; it is not checked
// against existing projects. BeginDate and EndDate are date-only strings
// stamped by the OPEN->IN_PROGRESS and IN_PROGRESS->DONE transitions.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	UserID      string
	ProjectID   string
	BeginDate   string
	EndDate     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DateOnly is the layout used for BeginDate and EndDate.
const DateOnly = "2006-01-02"
