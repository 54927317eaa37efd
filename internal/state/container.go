package state

import "sync"

// command carries one action into a container's dispatch loop.
type command[S any] struct {
	action any
	reply  chan S
}

// Container holds one slice of application state, mutated only through
// its reducer. All mutations flow through a single serialized command
// queue consumed by one goroutine, so the reducer never runs
// concurrently with itself. Reads take a defensive copy.
type Container[S any] struct {
	mu    sync.RWMutex
	state S

	reduce    func(S, any) S
	clone     func(S) S
	cmds      chan command[S]
	done      chan struct{}
	closeOnce sync.Once

	subMu sync.Mutex
	subs  []chan struct{}
}

// NewContainer builds a container around a pure reducer. clone produces
// an independent copy handed to readers; nil means the state is safely
// copyable by value.
func NewContainer[S any](initial S, reduce func(S, any) S, clone func(S) S) *Container[S] {
	if clone == nil {
		clone = func(s S) S { return s }
	}
	c := &Container[S]{
		state:  initial,
		reduce: reduce,
		clone:  clone,
		cmds:   make(chan command[S]),
		done:   make(chan struct{}),
	}
	go c.loop()
	return c
}

func (c *Container[S]) loop() {
	for {
		select {
		case cmd := <-c.cmds:
			c.mu.Lock()
			c.state = c.reduce(c.state, cmd.action)
			next := c.clone(c.state)
			c.mu.Unlock()
			cmd.reply <- next
			c.notify()
		case <-c.done:
			return
		}
	}
}

// Dispatch applies an action and returns the post-dispatch state. It
// blocks until the reducer has run, so a caller that dispatches and then
// persists sees exactly what the reducer decided.
func (c *Container[S]) Dispatch(action any) S {
	cmd := command[S]{action: action, reply: make(chan S, 1)}
	select {
	case c.cmds <- cmd:
		return <-cmd.reply
	case <-c.done:
		// Container closed; the dispatch is inert.
		return c.State()
	}
}

// State returns a copy of the current state.
func (c *Container[S]) State() S {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clone(c.state)
}

// Subscribe returns a channel that receives a signal after each applied
// action. Signals are coalesced: a slow consumer sees at least one signal
// for any burst of dispatches.
func (c *Container[S]) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.subMu.Lock()
	c.subs = append(c.subs, ch)
	c.subMu.Unlock()
	return ch
}

func (c *Container[S]) notify() {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close stops the dispatch loop. Dispatches after Close return the last
// state unchanged.
func (c *Container[S]) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
