// internal/domain/failure/failure.go
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the bot can run into.
type Kind int

const (
	KindMissingCredentials Kind = iota + 1
	KindConnection
	KindInvalidResponseCode
	KindTypeMismatch
	KindEmptyResponse
	KindMissingField
	KindUnknownStatus
	KindNotificationDelivery
)

var kindNames = map[Kind]string{
	KindMissingCredentials:   "MISSING_CREDENTIALS",
	KindConnection:           "CONNECTION",
	KindInvalidResponseCode:  "INVALID_RESPONSE_CODE",
	KindTypeMismatch:         "TYPE_MISMATCH",
	KindEmptyResponse:        "EMPTY_RESPONSE",
	KindMissingField:         "MISSING_FIELD",
	KindUnknownStatus:        "UNKNOWN_STATUS",
	KindNotificationDelivery: "NOTIFICATION_DELIVERY",
}

// Kinds that are only logged and never reported to the chat.
var logOnly = map[Kind]bool{
	KindMissingCredentials:   true,
	KindEmptyResponse:        true,
	KindNotificationDelivery: true,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Notify reports whether a failure of this kind should reach the user chat.
func (k Kind) Notify() bool {
	return !logOnly[k]
}

// Error is the single error type produced by the bot's components.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, so sentinel-style checks work:
// errors.Is(err, &failure.Error{Kind: failure.KindEmptyResponse}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind of the outermost *Error in the chain.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

// ShouldNotify is true for notify-worthy kinds and for errors that carry no kind at all.
func ShouldNotify(err error) bool {
	if err == nil {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	return kind.Notify()
}
