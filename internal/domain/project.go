package domain

import "time"

// Project groups tasks owned by the same user. Deleting a project does not
// cascade to its tasks; the association lives on the task side.
type Project struct {
	ID          string
	Title       string
	Description string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
