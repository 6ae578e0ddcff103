// Package errs defines the recoverable domain errors reported by the engine.
// Every error carries a Code; errors.Is matches any two errors with the same code.
package errs

import (
	"errors"
	"fmt"
)

// Code categorizes a domain error.
type Code string

const (
	CodeInsufficientFunds Code = "insufficient_funds"
	CodeOutOfStock        Code = "out_of_stock"
	CodeInvalidTarget     Code = "invalid_target"
	CodeInvalidAction     Code = "invalid_action"
	CodeBattleOver        Code = "battle_over"
	CodeSessionOver       Code = "session_over"
	CodeInvalidContent    Code = "invalid_content"
)

// Sentinels for errors.Is.
var (
	ErrInsufficientFunds = &Error{Code: CodeInsufficientFunds, Message: "insufficient funds"}
	ErrOutOfStock        = &Error{Code: CodeOutOfStock, Message: "out of stock"}
	ErrInvalidTarget     = &Error{Code: CodeInvalidTarget, Message: "invalid target"}
	ErrInvalidAction     = &Error{Code: CodeInvalidAction, Message: "invalid action"}
	ErrBattleOver        = &Error{Code: CodeBattleOver, Message: "battle is over"}
	ErrSessionOver       = &Error{Code: CodeSessionOver, Message: "session is over"}
	ErrInvalidContent    = &Error{Code: CodeInvalidContent, Message: "invalid content"}
)

// Error is a domain error with a code and optional metadata.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a domain error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithMeta adds metadata to the error and returns it.
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a domain error.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a domain error around a cause.
func Wrap(cause error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first domain error in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// InsufficientFunds reports a purchase the player cannot afford.
func InsufficientFunds(item string, cost, balance int) *Error {
	return New(CodeInsufficientFunds, "not enough dollars for %s (cost %d, have %d)", item, cost, balance).
		WithMeta("item", item).
		WithMeta("cost", cost).
		WithMeta("balance", balance)
}

// OutOfStock reports a consume attempt with nothing held.
func OutOfStock(item string) *Error {
	return New(CodeOutOfStock, "no %s left", item).WithMeta("item", item)
}

// InvalidTarget reports an adversary selection outside the roster.
func InvalidTarget(index, size int) *Error {
	return New(CodeInvalidTarget, "no adversary at position %d (choose 1-%d)", index, size).
		WithMeta("index", index)
}

// InvalidAction reports an unrecognized or disallowed action.
func InvalidAction(format string, args ...any) *Error {
	return New(CodeInvalidAction, format, args...)
}
