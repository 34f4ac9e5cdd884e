// Package dialog mounts content inside a modal shell attached to a render
// anchor. Content is produced by a factory and identified by its Kind, so the
// shell never needs to know the concrete content type.
package dialog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAnchorMissing = errors.New("dialog anchor not registered")
	ErrNoContent     = errors.New("dialog factory returned no content")
)

// Kind tags the known content variants.
type Kind string

const KindTaskForm Kind = "task-form"

// Content is what a dialog renders in its body.
type Content interface {
	Kind() Kind
	// Mount hands the content its back-reference to the dialog.
	Mount(ref *Ref) error
	Destroy()
}

type Factory func() Content

// Anchor is the place where shells are allowed to mount.
type Anchor interface {
	Attach(shell *Shell)
	Detach(shell *Shell)
}

// Shell is the modal wrapper around a content instance.
type Shell struct {
	id      string
	config  Config
	ref     *Ref
	mu      sync.RWMutex
	content Content
}

func (s *Shell) ID() string {
	return s.id
}

func (s *Shell) Config() Config {
	return s.config
}

func (s *Shell) Ref() *Ref {
	return s.ref
}

func (s *Shell) Content() Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Cancel closes the dialog without a result.
func (s *Shell) Cancel() {
	s.ref.Close(nil)
}

// Confirm closes the dialog with a true result.
func (s *Shell) Confirm() {
	s.ref.Close(true)
}

// Escape closes the dialog when the shell allows it.
func (s *Shell) Escape() bool {
	if !s.config.CloseOnEscape {
		return false
	}
	s.Cancel()
	return true
}

// BackdropClick closes the dialog when the shell allows it.
func (s *Shell) BackdropClick() bool {
	if !s.config.CloseOnBackdropClick {
		return false
	}
	s.Cancel()
	return true
}

type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Open attaches a shell to anchor and mounts the content produced by factory
// in it. A nil anchor is declined with ErrAnchorMissing.
func (s *Service) Open(factory Factory, cfg Config, anchor Anchor) (*Ref, error) {
	if anchor == nil {
		return nil, ErrAnchorMissing
	}

	cfg = cfg.normalize()
	ref := newRef(uuid.NewString())
	shell := &Shell{id: ref.ID(), config: cfg, ref: ref}
	anchor.Attach(shell)

	var content Content
	if factory != nil {
		content = factory()
	}
	if content == nil {
		anchor.Detach(shell)
		return nil, ErrNoContent
	}

	shell.mu.Lock()
	shell.content = content
	shell.mu.Unlock()

	// Installed before Mount so content closing its handle while mounting
	// still tears everything down.
	ref.setTeardown(func() {
		content.Destroy()
		anchor.Detach(shell)
		s.logger.Debug("dialog closed", zap.String("dialog_id", shell.id), zap.String("kind", string(content.Kind())))
	})

	if err := content.Mount(ref); err != nil {
		if !ref.Closed() {
			ref.setTeardown(nil)
			anchor.Detach(shell)
		}
		return nil, fmt.Errorf("mount %s content: %w", content.Kind(), err)
	}

	s.logger.Debug("dialog opened",
		zap.String("dialog_id", shell.id),
		zap.String("kind", string(content.Kind())),
		zap.String("size", string(cfg.Size)),
	)
	return ref, nil
}
