package domain

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error categories surfaced to API callers.
type Kind string

const (
	KindNoAdminKey                Kind = "NO_ADMIN_KEY"
	KindRegistryNotConfigured     Kind = "REGISTRY_NOT_CONFIGURED"
	KindMarketplaceNotConfigured  Kind = "MARKETPLACE_NOT_CONFIGURED"
	KindFileRegistryNotConfigured Kind = "FILE_REGISTRY_NOT_CONFIGURED"
	KindInvalidRequest            Kind = "INVALID_REQUEST"
	KindChain                     Kind = "CHAIN_ERROR"
	KindStorage                   Kind = "STORAGE_ERROR"
	KindNotFound                  Kind = "NOT_FOUND"
	KindUnauthorized              Kind = "UNAUTHORIZED"
)

// IsConfiguration reports whether the kind describes a missing local
// configuration rather than a failed call.
func (k Kind) IsConfiguration() bool {
	switch k {
	case KindNoAdminKey, KindRegistryNotConfigured, KindMarketplaceNotConfigured,
		KindFileRegistryNotConfigured:
		return true
	default:
		return false
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the raw diagnostic of the wrapped error, or the kind itself.
func (e *Error) Message() string {
	if e.Err == nil {
		return string(e.Kind)
	}

	return e.Err.Error()
}

var (
	ErrNoAdminKey                = &Error{Kind: KindNoAdminKey}
	ErrRegistryNotConfigured     = &Error{Kind: KindRegistryNotConfigured}
	ErrMarketplaceNotConfigured  = &Error{Kind: KindMarketplaceNotConfigured}
	ErrFileRegistryNotConfigured = &Error{Kind: KindFileRegistryNotConfigured}
	ErrNotFound                  = &Error{Kind: KindNotFound}
)

func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Err: err}
}

func Invalid(format string, args ...any) error {
	return &Error{Kind: KindInvalidRequest, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind carried by err, or fallback when err holds none.
func KindOf(err error, fallback Kind) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return fallback
}
