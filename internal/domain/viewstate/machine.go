// Package viewstate models the lifecycle every screen goes through: waiting
// for its first data, showing it, submitting writes and surfacing errors.
package viewstate

import (
	"sync"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

// Phase is the stable display state of a screen.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseErrored Phase = "errored"
)

// ErrSubmitInFlight is returned when a write is started while another one is pending.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// genericFailure is shown for errors that carry no user-facing message.
const genericFailure = "Something went wrong. Please try again."

// NoticeKind classifies a notice.
type NoticeKind string

const (
	NoticeError   NoticeKind = "error"
	NoticeSuccess NoticeKind = "success"
)

// Notice is a dismissable message shown over the screen.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Code    string     `json:"code,omitempty"`
	Message string     `json:"message"`
}

// State is what a screen renders.
type State struct {
	Phase      Phase   `json:"phase"`
	Submitting bool    `json:"submitting"`
	Notice     *Notice `json:"notice,omitempty"`
	Data       any     `json:"data,omitempty"`
}

// Machine drives a screen's State. It is safe for concurrent use; every
// transition is reported to the change callback in the order it happened.
// The callback may read State but must not start another transition.
type Machine struct {
	// notifyMu is held from a transition until its callback returns, so a
	// later frame never overtakes an earlier one.
	notifyMu sync.Mutex
	mu       sync.Mutex
	state    State
	stable   Phase // phase to return to when an error is dismissed
	onChange func(State)
}

// NewMachine creates a machine in the Loading phase. onChange may be nil.
func NewMachine(onChange func(State)) *Machine {
	return &Machine{
		state:    State{Phase: PhaseLoading},
		stable:   PhaseLoading,
		onChange: onChange,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Mount (re)enters Loading and clears any previous data.
func (m *Machine) Mount() {
	m.transition(func(s *State) {
		*s = State{Phase: PhaseLoading}
		m.stable = PhaseLoading
	})
}

// Deliver replaces the screen data. The first delivery moves Loading to
// Ready; while Errored the data is kept and shown once the error is dismissed.
func (m *Machine) Deliver(data any) {
	m.transition(func(s *State) {
		s.Data = data
		m.stable = PhaseReady
		if s.Phase == PhaseLoading {
			s.Phase = PhaseReady
		}
	})
}

// BeginSubmit marks a write as in flight.
func (m *Machine) BeginSubmit() error {
	return m.update(func(s *State) error {
		if s.Submitting {
			return ErrSubmitInFlight
		}
		s.Submitting = true
		s.Notice = nil

		return nil
	})
}

// EndSubmit clears the in-flight flag. A failure leaves the screen usable
// with an error notice; success may carry a confirmation message.
func (m *Machine) EndSubmit(err error, success string) {
	m.transition(func(s *State) {
		s.Submitting = false
		if s.Phase == PhaseErrored {
			s.Phase = m.stable
		}
		switch {
		case err != nil:
			s.Notice = ErrorNotice(err)
		case success != "":
			s.Notice = &Notice{Kind: NoticeSuccess, Message: success}
		default:
			s.Notice = nil
		}
	})
}

// Fail enters Errored, for instance when a subscription reports an error.
func (m *Machine) Fail(err error) {
	m.transition(func(s *State) {
		if s.Phase != PhaseErrored {
			m.stable = s.Phase
		}
		s.Phase = PhaseErrored
		s.Notice = ErrorNotice(err)
	})
}

// Dismiss clears the notice and leaves Errored for the phase held before it.
func (m *Machine) Dismiss() {
	m.transition(func(s *State) {
		s.Notice = nil
		if s.Phase == PhaseErrored {
			s.Phase = m.stable
		}
	})
}

func (m *Machine) transition(apply func(*State)) {
	_ = m.update(func(s *State) error {
		apply(s)

		return nil
	})
}

// update applies a transition and reports it unless apply refuses it.
func (m *Machine) update(apply func(*State) error) error {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	err := apply(&m.state)
	snapshot := m.state
	m.mu.Unlock()

	if err != nil {
		return err
	}
	if m.onChange != nil {
		m.onChange(snapshot)
	}

	return nil
}

// ErrorNotice converts err into a notice, using the user-facing message of
// application errors and a generic text otherwise.
func ErrorNotice(err error) *Notice {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return &Notice{Kind: NoticeError, Code: appErr.ErrorCode(), Message: appErr.Message()}
	}

	return &Notice{Kind: NoticeError, Message: genericFailure}
}
