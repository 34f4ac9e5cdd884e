package dialog

import "sync"

// Outlet is an in-process anchor that keeps open shells addressable by id.
type Outlet struct {
	mu     sync.RWMutex
	shells map[string]*Shell
	order  []string
}

var _ Anchor = (*Outlet)(nil)

func NewOutlet() *Outlet {
	return &Outlet{shells: make(map[string]*Shell)}
}

func (o *Outlet) Attach(shell *Shell) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.shells[shell.ID()]; exists {
		return
	}
	o.shells[shell.ID()] = shell
	o.order = append(o.order, shell.ID())
}

func (o *Outlet) Detach(shell *Shell) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.shells[shell.ID()]; !exists {
		return
	}
	delete(o.shells, shell.ID())
	for i, id := range o.order {
		if id == shell.ID() {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

func (o *Outlet) Get(id string) (*Shell, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	shell, ok := o.shells[id]
	return shell, ok
}

// List returns the attached shells in attach order.
func (o *Outlet) List() []*Shell {
	o.mu.RLock()
	defer o.mu.RUnlock()

	shells := make([]*Shell, 0, len(o.order))
	for _, id := range o.order {
		shells = append(shells, o.shells[id])
	}
	return shells
}
