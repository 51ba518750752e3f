package live

import (
	"encoding/json"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/viewstate"

	"github.com/pkg/errors"
)

// Frame types pushed to the client.
const (
	FrameState  = "state"
	FrameResult = "result"
)

// Actions understood by every screen.
const (
	ActionDismiss = "dismiss"
	ActionReload  = "reload"
)

// Message is a request sent by the client.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// StateFrame carries the rendered state of the screen.
type StateFrame struct {
	Type string `json:"type"`
	viewstate.State
}

// ResultFrame answers one action.
type ResultFrame struct {
	Type   string            `json:"type"`
	Action string            `json:"action"`
	OK     bool              `json:"ok"`
	Data   any               `json:"data,omitempty"`
	Notice *viewstate.Notice `json:"notice,omitempty"`
}

// errUnknownAction is reported for actions a screen does not handle.
var errUnknownAction = domainerrors.ErrValidationFailed.WithDetails("unknown action")

// decode reads an action payload. A missing payload leaves v untouched.
func decode(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(errors.WithStack(err).Error())
	}

	return nil
}
