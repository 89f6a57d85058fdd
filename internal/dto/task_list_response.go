// File: internal/dto/task_list_response.go
package dto

// TaskListResponse 分頁任務清單
// swagger:model dto.TaskListResponse
type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
	Total int            `json:"total" example:"42"`
	Page  int            `json:"page" example:"1"`
	Size  int            `json:"size" example:"20"`
}
