package errs

import (
	"errors"
	"fmt"
)

// ConnectionError ... The control connection to the server could not be established.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("ftp: connect %s: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// IsConnectionError ... Checks if an error is a ConnectionError.
func IsConnectionError(err error) bool {
	var target *ConnectionError
	return errors.As(err, &target)
}

// AuthenticationError ... The server rejected the supplied credentials.
type AuthenticationError struct {
	User string
	Err  error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("ftp: login as %s rejected: %v", e.User, e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// IsAuthenticationError ... Checks if an error is an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// TransferError ... An upload or download did not complete.
type TransferError struct {
	Op   string
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("ftp: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// IsTransferError ... Checks if an error is a TransferError.
func IsTransferError(err error) bool {
	var target *TransferError
	return errors.As(err, &target)
}

// ListingError ... A directory listing failed.
type ListingError struct {
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("ftp: list %s: %v", e.Path, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

// IsListingError ... Checks if an error is a ListingError.
func IsListingError(err error) bool {
	var target *ListingError
	return errors.As(err, &target)
}

// DeletionError ... A remote file could not be removed.
type DeletionError struct {
	Path string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("ftp: delete %s: %v", e.Path, e.Err)
}

func (e *DeletionError) Unwrap() error { return e.Err }

// IsDeletionError ... Checks if an error is a DeletionError.
func IsDeletionError(err error) bool {
	var target *DeletionError
	return errors.As(err, &target)
}

// PreconditionError ... An operation was attempted outside the connected state.
type PreconditionError struct {
	Op    string
	State string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("ftp: %s requires an active session (session is %s)", e.Op, e.State)
}

// IsPreconditionError ... Checks if an error is a PreconditionError.
func IsPreconditionError(err error) bool {
	var target *PreconditionError
	return errors.As(err, &target)
}

// UnknownRemoteError ... A named remote is not present in the provider's catalog.
type UnknownRemoteError struct {
	Name string
}

func (e *UnknownRemoteError) Error() string {
	return fmt.Sprintf("ftp: unknown remote %q", e.Name)
}

// IsUnknownRemoteError ... Checks if an error is an UnknownRemoteError.
func IsUnknownRemoteError(err error) bool {
	var target *UnknownRemoteError
	return errors.As(err, &target)
}
