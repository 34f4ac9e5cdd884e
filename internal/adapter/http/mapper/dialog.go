package mapper

import (
	"github.com/axlwolf/task-manager/internal/adapter/http/dto"
	"github.com/axlwolf/task-manager/internal/app/dialog"
	"github.com/axlwolf/task-manager/internal/app/store"
)

func ToDialogItems(shells []*dialog.Shell) []dto.DialogItem {
	items := make([]dto.DialogItem, 0, len(shells))
	for _, shell := range shells {
		items = append(items, ToDialogItem(shell))
	}
	return items
}

func ToDialogItem(shell *dialog.Shell) dto.DialogItem {
	cfg := shell.Config()
	item := dto.DialogItem{
		ID:        shell.ID(),
		SizeClass: cfg.Size.Class(),
		Config:    cfg,
	}

	content := shell.Content()
	if content == nil {
		return item
	}
	item.Kind = string(content.Kind())

	if form, ok := content.(*store.TaskForm); ok {
		values := ToTaskFormItem(form.Values())
		item.Form = &values
	}
	return item
}

func ToTaskFormItem(values store.TaskFormValues) dto.TaskFormItem {
	return dto.TaskFormItem{
		Title:       values.Title,
		Description: values.Description,
		DueDate:     values.DueDate,
	}
}
