package dto

type TaskItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	UserID      string `json:"user_id"`
	Completed   bool   `json:"completed"`
}

// CreateTaskRequest creates a task for UserID, or for the selected user when it is empty.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=65535"`
	DueDate     string `json:"due_date" binding:"required"`
	UserID      string `json:"user_id"`
}
