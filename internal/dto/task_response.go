// File: internal/dto/task_response.go
package dto

import (
	"time"

	"devtask/internal/model"
)

// TaskResponse 回傳的任務資訊，不包含擁有者內部欄位
// swagger:model dto.TaskResponse
type TaskResponse struct {
	ID         int       `json:"id" example:"1"`
	Title      string    `json:"title" example:"write spec"`
	Status     string    `json:"status" example:"todo"`
	TimeLogged float64   `json:"time_logged" example:"0"`
	CreatedAt  time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

// NewTaskResponse 由 model.Task 組裝回應
func NewTaskResponse(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:         t.ID,
		Title:      t.Title,
		Status:     string(t.Status),
		TimeLogged: t.TimeLogged,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
