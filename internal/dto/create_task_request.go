// File: internal/dto/create_task_request.go
package dto

// swagger:model dto.CreateTaskRequest
type CreateTaskRequest struct {
	Title      string  `json:"title" validate:"required,min=1,max=255" example:"write spec"`
	Status     string  `json:"status" validate:"omitempty,oneof=todo in_progress done" example:"todo"`
	TimeLogged float64 `json:"time_logged" validate:"gte=0" example:"0"`
}
