// Package store coordinates the user and task state shown to a session.
//
// Every load, create and complete operation launches one asynchronous
// use-case call. Results are applied under the store lock by pure
// replace-or-append functions and listeners receive a fresh snapshot after
// each mutation. Failures clear the loading flag and leave state untouched.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/axlwolf/task-manager/internal/app/dialog"
	"github.com/axlwolf/task-manager/internal/app/usecase"
	"github.com/axlwolf/task-manager/internal/core/domain"
)

type TaskLoader interface {
	Execute(ctx context.Context, userID string) ([]domain.Task, error)
}

type UserLoader interface {
	Execute(ctx context.Context) ([]domain.User, error)
}

type TaskCreator interface {
	Execute(ctx context.Context, dto usecase.CreateTaskDTO) (domain.Task, error)
}

type TaskCompleter interface {
	Execute(ctx context.Context, taskID string) (domain.Task, error)
}

type UseCases struct {
	GetTasks     TaskLoader
	GetUsers     UserLoader
	CreateTask   TaskCreator
	CompleteTask TaskCompleter
}

type Store struct {
	logger   *zap.Logger
	useCases UseCases
	dialogs  *dialog.Service
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu              sync.Mutex
	users           []domain.User
	tasks           []domain.Task
	selectedUserID  *string
	inflight        int
	idle            chan struct{}
	version         uint64
	pending         *State
	notifying       bool
	tasksGeneration uint64
	closed          bool
	anchor          dialog.Anchor
	listeners       map[int]func(State)
	nextListener    int
}

// New builds the store and starts loading the user list.
func New(useCases UseCases, dialogs *dialog.Service, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dialogs == nil {
		dialogs = dialog.NewService(logger)
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		logger:    logger,
		useCases:  useCases,
		dialogs:   dialogs,
		now:       time.Now,
		ctx:       ctx,
		cancel:    cancel,
		users:     []domain.User{},
		tasks:     []domain.Task{},
		listeners: make(map[int]func(State)),
	}
	s.LoadUsers()
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every mutation. The
// returned function removes the listener.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) LoadUsers() {
	s.commit(s.loadUsersLocked)
}

func (s *Store) LoadTasks(userID string) {
	s.commit(func() func() {
		return s.loadTasksLocked(userID)
	})
}

// SelectUser switches the selection and reloads the task list. The id is not
// checked against the user list.
func (s *Store) SelectUser(userID string) {
	s.commit(func() func() {
		return s.selectUserLocked(userID)
	})
}

// CreateTask appends the created task to the task list, whatever its owner.
func (s *Store) CreateTask(dto usecase.CreateTaskDTO) {
	s.commit(func() func() {
		s.acquireLocked()
		return func() {
			go func() {
				task, err := s.useCases.CreateTask.Execute(s.ctx, dto)
				s.commit(func() func() {
					defer s.releaseLocked()
					if err != nil {
						s.logger.Warn("failed to create task", zap.String("user_id", dto.UserID), zap.Error(err))
						return nil
					}
					if s.selectedUserID == nil || *s.selectedUserID != task.UserID {
						s.logger.Debug("created task belongs to another user", zap.String("task_id", task.ID), zap.String("user_id", task.UserID))
					}
					s.tasks = appendTask(s.tasks, task)
					return nil
				})
			}()
		}
	})
}

// CompleteTask replaces the matching task in place, keeping list order.
func (s *Store) CompleteTask(taskID string) {
	s.commit(func() func() {
		s.acquireLocked()
		return func() {
			go func() {
				task, err := s.useCases.CompleteTask.Execute(s.ctx, taskID)
				s.commit(func() func() {
					defer s.releaseLocked()
					if err != nil {
						s.logger.Warn("failed to complete task", zap.String("task_id", taskID), zap.Error(err))
						return nil
					}
					s.tasks = replaceTask(s.tasks, task)
					return nil
				})
			}()
		}
	})
}

// SetViewAnchor registers where dialogs opened by the store are mounted.
func (s *Store) SetViewAnchor(anchor dialog.Anchor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchor = anchor
}

// ShowAddTaskForm opens the task creation dialog. Without a registered anchor
// it logs an error and returns nil.
func (s *Store) ShowAddTaskForm() *dialog.Ref {
	s.mu.Lock()
	anchor, closed := s.anchor, s.closed
	s.mu.Unlock()

	if closed {
		return nil
	}
	if anchor == nil {
		s.logger.Error("view anchor not set, call SetViewAnchor first")
		return nil
	}

	ref, err := s.dialogs.Open(func() dialog.Content {
		return NewTaskForm(s, s.now())
	}, addTaskDialogConfig(), anchor)
	if err != nil {
		s.logger.Error("failed to open add task dialog", zap.Error(err))
		return nil
	}
	return ref
}

// Wait blocks until no use-case call is in flight, the store is closed or ctx
// is done.
func (s *Store) Wait(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.idle == nil {
		s.mu.Unlock()
		return nil
	}
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops delivery of every pending and future result.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	s.inflight = 0
	s.pending = nil
	if s.idle != nil {
		close(s.idle)
		s.idle = nil
	}
}

func addTaskDialogConfig() dialog.Config {
	return dialog.Config{
		Title:                "",
		Size:                 dialog.SizeMedium,
		ShowFooter:           false,
		HideDefaultButtons:   true,
		CloseOnEscape:        true,
		CloseOnBackdropClick: false,
	}
}

func (s *Store) loadUsersLocked() func() {
	s.acquireLocked()
	return func() {
		go func() {
			users, err := s.useCases.GetUsers.Execute(s.ctx)
			s.commit(func() func() {
				defer s.releaseLocked()
				if err != nil {
					s.logger.Warn("failed to load users", zap.Error(err))
					return nil
				}
				s.users = users
				if len(users) > 0 && s.selectedUserID == nil {
					return s.selectUserLocked(users[0].ID)
				}
				return nil
			})
		}()
	}
}

func (s *Store) selectUserLocked(userID string) func() {
	id := userID
	s.selectedUserID = &id
	return s.loadTasksLocked(userID)
}

func (s *Store) loadTasksLocked(userID string) func() {
	s.acquireLocked()
	s.tasksGeneration++
	generation := s.tasksGeneration
	return func() {
		go func() {
			tasks, err := s.useCases.GetTasks.Execute(s.ctx, userID)
			s.commit(func() func() {
				defer s.releaseLocked()
				if err != nil {
					s.logger.Warn("failed to load tasks", zap.String("user_id", userID), zap.Error(err))
					return nil
				}
				if generation != s.tasksGeneration {
					s.logger.Debug("discarding stale task list", zap.String("user_id", userID))
					return nil
				}
				s.tasks = tasks
				return nil
			})
		}()
	}
}

// commit runs mutate under the lock, publishes the new snapshot and then runs
// the follow-up returned by mutate. Nothing runs once the store is closed.
func (s *Store) commit(mutate func() func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	next := mutate()
	s.version++
	snapshot := s.snapshotLocked()
	s.pending = &snapshot
	drain := !s.notifying
	s.notifying = true
	s.mu.Unlock()

	if drain {
		s.deliver()
	}
	if next != nil {
		next()
	}
}

// deliver hands pending snapshots to the listeners until none is left. Only one
// goroutine delivers at a time and a newer snapshot replaces an undelivered
// older one, so listeners observe versions in increasing order and always end
// on the latest state. The idle channel is closed once the last snapshot of a
// settled store has been delivered.
func (s *Store) deliver() {
	for {
		s.mu.Lock()
		if s.closed || s.pending == nil {
			s.notifying = false
			if s.inflight == 0 && s.idle != nil {
				close(s.idle)
				s.idle = nil
			}
			s.mu.Unlock()
			return
		}
		snapshot := *s.pending
		s.pending = nil
		listeners := make([]func(State), 0, len(s.listeners))
		for _, fn := range s.listeners {
			listeners = append(listeners, fn)
		}
		s.mu.Unlock()

		for _, fn := range listeners {
			fn(snapshot)
		}
	}
}

func (s *Store) acquireLocked() {
	if s.idle == nil {
		s.idle = make(chan struct{})
	}
	s.inflight++
}

func (s *Store) releaseLocked() {
	if s.inflight == 0 {
		return
	}
	s.inflight--
}

func (s *Store) snapshotLocked() State {
	state := State{
		Users:   make([]domain.User, len(s.users)),
		Tasks:   make([]domain.Task, len(s.tasks)),
		Loading: s.inflight > 0,
		Version: s.version,
	}
	copy(state.Users, s.users)
	copy(state.Tasks, s.tasks)
	if s.selectedUserID != nil {
		id := *s.selectedUserID
		state.SelectedUserID = &id
	}
	return state
}
