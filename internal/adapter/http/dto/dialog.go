package dto

import "github.com/axlwolf/task-manager/internal/app/dialog"

type DialogItem struct {
	ID        string        `json:"id"`
	Kind      string        `json:"kind"`
	SizeClass string        `json:"size_class"`
	Config    dialog.Config `json:"config"`
	Form      *TaskFormItem `json:"form,omitempty"`
}

type TaskFormItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type TaskFormRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type DialogClosedResponse struct {
	ID     string `json:"id"`
	Closed bool   `json:"closed"`
	Result any    `json:"result"`
}

type DialogSubmitResponse struct {
	ID     string        `json:"id"`
	Task   TaskFormItem  `json:"task"`
	UserID string        `json:"user_id"`
	State  StateResponse `json:"state"`
}
