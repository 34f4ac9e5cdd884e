package dto

type UserItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

type StateResponse struct {
	Users          []UserItem `json:"users"`
	Tasks          []TaskItem `json:"tasks"`
	SelectedUserID *string    `json:"selected_user_id"`
	SelectedUser   *UserItem  `json:"selected_user"`
	Loading        bool       `json:"loading"`
}
