package dialog

import "sync"

// Ref is the handle shared by the opener and the dialog content. Only the
// first Close has an effect.
type Ref struct {
	id string

	once     sync.Once
	done     chan struct{}
	mu       sync.Mutex
	result   any
	closed   bool
	teardown func()
	hooks    []func(result any)
}

func newRef(id string) *Ref {
	return &Ref{id: id, done: make(chan struct{})}
}

func (r *Ref) ID() string {
	return r.id
}

// Close tears down the content and the shell, then resolves Done with result.
func (r *Ref) Close(result any) {
	r.once.Do(func() {
		r.mu.Lock()
		r.result = result
		r.closed = true
		teardown := r.teardown
		hooks := r.hooks
		r.hooks = nil
		r.mu.Unlock()

		if teardown != nil {
			teardown()
		}
		close(r.done)
		for _, hook := range hooks {
			hook(result)
		}
	})
}

// Done is closed once the dialog has been closed.
func (r *Ref) Done() <-chan struct{} {
	return r.done
}

func (r *Ref) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Result returns the value passed to the first Close call.
func (r *Ref) Result() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// AfterClosed registers fn to run with the close result. If the dialog is
// already closed fn runs immediately.
func (r *Ref) AfterClosed(fn func(result any)) {
	r.mu.Lock()
	if r.closed {
		result := r.result
		r.mu.Unlock()
		fn(result)
		return
	}
	r.hooks = append(r.hooks, fn)
	r.mu.Unlock()
}

func (r *Ref) setTeardown(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teardown = fn
}
