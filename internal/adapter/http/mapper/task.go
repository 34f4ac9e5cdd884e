package mapper

import (
	"github.com/axlwolf/task-manager/internal/adapter/http/dto"
	"github.com/axlwolf/task-manager/internal/core/domain"
	"github.com/axlwolf/task-manager/pkg/textutil"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Summary:     textutil.Summary(task.Description),
		Description: task.Description,
		DueDate:     task.DueDate.Format(domain.DateLayout),
		UserID:      task.UserID,
		Completed:   task.Completed,
	}
}
