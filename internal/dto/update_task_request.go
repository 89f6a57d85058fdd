// File: internal/dto/update_task_request.go
package dto

// UpdateTaskRequest 部分更新請求，未提供的欄位維持原值
// swagger:model dto.UpdateTaskRequest
type UpdateTaskRequest struct {
	Title      *string  `json:"title" validate:"omitempty,min=1,max=255" example:"write spec"`
	Status     *string  `json:"status" validate:"omitempty,oneof=todo in_progress done" example:"in_progress"`
	TimeLogged *float64 `json:"time_logged" example:"1.5"`
}
