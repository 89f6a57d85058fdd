// File: internal/model/task.go
package model

import "time"

// TaskStatus 任務狀態列舉
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

type Task struct {
	ID         int        `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Status     TaskStatus `db:"status" json:"status"`
	TimeLogged float64    `db:"time_logged" json:"time_logged"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
	OwnerID    int        `db:"owner_id" json:"-"`
}

// TaskPatch 部分更新用，nil 欄位表示不變更
type TaskPatch struct {
	Title      *string
	Status     *TaskStatus
	TimeLogged *float64
}
