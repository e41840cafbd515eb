package bind

import (
	"errors"
	"fmt"
)

// SignatureError reports an unsupported parameter declaration. It surfaces
// when a command is registered, never while a command runs.
type SignatureError struct {
	Param  string
	Reason string
}

func (e *SignatureError) Error() string {
	if e.Param == "" {
		return "bind: " + e.Reason
	}
	return fmt.Sprintf("bind: parameter %q: %s", e.Param, e.Reason)
}

func signatureErrorf(param, format string, a ...any) *SignatureError {
	return &SignatureError{Param: param, Reason: fmt.Sprintf(format, a...)}
}

// BindError is a runtime argument failure. Its message is meant for the user
// who typed the command, so it should stay descriptive and free of internals.
type BindError struct {
	Message string
}

func (e *BindError) Error() string { return e.Message }

func bindErrorf(format string, a ...any) *BindError {
	return &BindError{Message: fmt.Sprintf(format, a...)}
}

// wrapBindError returns err as-is when it already is a *BindError, so custom
// converter messages survive. Anything else is wrapped, keeping its text.
func wrapBindError(err error) *BindError {
	var be *BindError
	if errors.As(err, &be) {
		return be
	}
	return &BindError{Message: err.Error()}
}
