package store

import "github.com/axlwolf/task-manager/internal/core/domain"

// State is an immutable snapshot of the store.
type State struct {
	Users          []domain.User
	Tasks          []domain.Task
	SelectedUserID *string
	Loading        bool
	// Version increases with every mutation.
	Version uint64
}

// SelectedUser returns the user matching SelectedUserID, or nil.
func (s State) SelectedUser() *domain.User {
	return selectedUser(s.Users, s.SelectedUserID)
}

func selectedUser(users []domain.User, userID *string) *domain.User {
	if userID == nil {
		return nil
	}
	for i := range users {
		if users[i].ID == *userID {
			user := users[i]
			return &user
		}
	}
	return nil
}

func replaceTask(tasks []domain.Task, updated domain.Task) []domain.Task {
	result := make([]domain.Task, len(tasks))
	for i, task := range tasks {
		if task.ID == updated.ID {
			result[i] = updated
			continue
		}
		result[i] = task
	}
	return result
}

func appendTask(tasks []domain.Task, task domain.Task) []domain.Task {
	result := make([]domain.Task, 0, len(tasks)+1)
	result = append(result, tasks...)
	return append(result, task)
}
