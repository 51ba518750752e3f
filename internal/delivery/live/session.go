package live

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/viewstate"
)

// screen is the server half of one client screen.
type screen interface {
	// open subscribes the screen's data sources.
	open(ctx context.Context) error
	// handle runs a screen-specific action.
	handle(ctx context.Context, msg Message) error
}

// session is one open screen: its socket, machine, and subscriptions.
type session struct {
	deps    *Handler
	auth    *entity.Session
	conn    *conn
	machine *viewstate.Machine
	scope   *viewstate.Scope
	params  map[string]string

	mu    sync.Mutex
	slots map[string]*slot

	writes sync.WaitGroup
}

func newSession(deps *Handler, auth *entity.Session, c *conn, params map[string]string) *session {
	s := &session{
		deps:   deps,
		auth:   auth,
		conn:   c,
		scope:  viewstate.NewScope(),
		params: params,
		slots:  make(map[string]*slot),
	}
	s.machine = viewstate.NewMachine(func(state viewstate.State) {
		c.send(StateFrame{Type: FrameState, State: state})
	})

	return s
}

// slot returns the named subscription holder, registering it in the scope on first use.
func (s *session) slot(name string) *slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[name]
	if !ok {
		sl = &slot{}
		s.slots[name] = sl
		s.scope.Acquire(sl.release)
	}

	return sl
}

// reply answers an action.
func (s *session) reply(action string, data any, err error) {
	frame := ResultFrame{Type: FrameResult, Action: action, OK: err == nil, Data: data}
	if err != nil {
		frame.Notice = viewstate.ErrorNotice(err)
	}
	s.conn.send(frame)
}

// submit runs a write in the background. The write outlives the connection;
// its result is dropped once the client is gone.
func (s *session) submit(ctx context.Context, msg Message, write func(ctx context.Context) (data any, success string, err error)) {
	if err := s.machine.BeginSubmit(); err != nil {
		s.reply(msg.Action, nil, err)

		return
	}

	s.writes.Add(1)
	go func() {
		defer s.writes.Done()

		data, success, err := write(context.WithoutCancel(ctx))
		s.machine.EndSubmit(err, success)
		s.reply(msg.Action, data, err)
	}()
}

// close releases every subscription and waits for pending writes.
func (s *session) close() {
	s.scope.Close()
	s.writes.Wait()
}

// watch (re)opens the subscription held in slot name. Snapshots delivered by
// a replaced subscription are dropped; listener errors put the screen in Errored.
func watch[T any](s *session, name string, open func(repository.Listener[T]) (repository.Unsubscribe, error), onData func(T)) error {
	sl := s.slot(name)
	gen := sl.reset()

	unsub, err := open(func(data T, err error) {
		if !sl.current(gen) {
			return
		}
		if err != nil {
			s.machine.Fail(err)

			return
		}
		onData(data)
	})
	if err != nil {
		return err
	}
	sl.set(gen, unsub)

	return nil
}

// slot holds one replaceable subscription.
type slot struct {
	mu     sync.Mutex
	gen    uint64
	unsub  repository.Unsubscribe
	closed bool
}

// reset releases the held subscription and starts a new generation.
func (sl *slot) reset() uint64 {
	sl.mu.Lock()
	old := sl.unsub
	sl.unsub = nil
	sl.gen++
	gen := sl.gen
	sl.mu.Unlock()

	if old != nil {
		old()
	}

	return gen
}

// set stores unsub unless the slot moved on or was released in the meantime.
func (sl *slot) set(gen uint64, unsub repository.Unsubscribe) {
	sl.mu.Lock()
	if sl.closed || sl.gen != gen {
		sl.mu.Unlock()
		unsub()

		return
	}
	sl.unsub = unsub
	sl.mu.Unlock()
}

func (sl *slot) current(gen uint64) bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	return !sl.closed && sl.gen == gen
}

func (sl *slot) release() {
	sl.mu.Lock()
	sl.closed = true
	old := sl.unsub
	sl.unsub = nil
	sl.mu.Unlock()

	if old != nil {
		old()
	}
}

// payload decodes msg into v or answers the action with the decoding error.
func (s *session) payload(msg Message, v any) bool {
	if err := decode(msg.Payload, v); err != nil {
		s.reply(msg.Action, nil, err)

		return false
	}

	return true
}
