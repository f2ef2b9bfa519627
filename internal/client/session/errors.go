package session

import (
	"errors"
	"fmt"

	"github.com/minseo-k/fridgekeeper/internal/client/api"
)

// ErrBusy is returned when a session operation is requested while another
// one is still in flight. The caller should retry once the first finishes.
var ErrBusy = errors.New("another session operation is in flight")

// Fallback messages shown when the service does not explain a rejection.
const (
	loginFailedMsg  = "login failed"
	signupFailedMsg = "signup failed"
	deleteFailedMsg = "account deletion failed"
)

// AuthError is returned by Login, Signup and DeleteAccount when the remote
// service rejects the operation. Message is safe to show to the user: the
// service's detail text when present, a per-operation fallback otherwise.
type AuthError struct {
	Op      string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

func newAuthError(op, fallback string, err error) *AuthError {
	msg := fallback
	if detail := api.ErrorDetail(err); detail != "" {
		msg = detail
	}
	return &AuthError{Op: op, Message: msg, Err: err}
}

// UpdateError is returned by UpdateUser when the local merge or persist
// step fails. There is no remote detail to surface.
type UpdateError struct {
	Err error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("user update failed: %v", e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }
