package mapper

import (
	"github.com/axlwolf/task-manager/internal/adapter/http/dto"
	"github.com/axlwolf/task-manager/internal/app/store"
	"github.com/axlwolf/task-manager/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{ID: user.ID, Name: user.Name}
	if user.Avatar != nil {
		value := *user.Avatar
		item.Avatar = &value
	}
	return item
}

func ToStateResponse(state store.State) dto.StateResponse {
	response := dto.StateResponse{
		Users:          ToUserItems(state.Users),
		Tasks:          ToTaskItems(state.Tasks),
		SelectedUserID: state.SelectedUserID,
		Loading:        state.Loading,
	}
	if user := state.SelectedUser(); user != nil {
		item := ToUserItem(*user)
		response.SelectedUser = &item
	}
	return response
}
