package vssetup

import (
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/go-ole/go-ole"
)

var (
	// ErrNotInstalled indicates the Setup Configuration component is not
	// registered on this machine.
	ErrNotInstalled = errors.New("setup configuration module is not installed")

	// ErrNotImplemented indicates an optional capability the installed
	// component does not support.
	ErrNotImplemented = errors.New("not implemented")
)

// StatusError is a failing HRESULT returned by the component.
type StatusError struct {
	// Code is the failing status.
	Code HRESULT

	err *ole.OleError
}

func newStatusError(hr HRESULT, err *ole.OleError) *StatusError {
	if err == nil {
		err = ole.NewError(hr.raw())
	}
	return &StatusError{Code: hr, err: err}
}

// Error returns the platform's message for the code. When the platform has
// none, the code itself is rendered.
func (e *StatusError) Error() string {
	var msg string
	if e.err != nil {
		msg = strings.TrimSpace(e.err.Error())
	}
	if msg == "" || strings.HasPrefix(msg, "(") {
		msg = strings.TrimSpace("HRESULT " + e.Code.String() + " " + msg)
	}
	return msg
}

// Unwrap returns the underlying [ole.OleError].
func (e *StatusError) Unwrap() error {
	if e.err == nil {
		return nil
	}
	return e.err
}

// FromCode maps a raw status code.
func FromCode(code int32) error {
	return FromHRESULT(HRESULT(code))
}

// FromHRESULT maps a status code. Success codes yield nil, E_NOTIMPL yields
// [ErrNotImplemented], and every other failure a [*StatusError].
func FromHRESULT(hr HRESULT) error {
	switch {
	case hr.Succeeded():
		return nil
	case hr == StatusNotImplemented:
		return ErrNotImplemented
	default:
		return newStatusError(hr, nil)
	}
}

// FromWin32 maps a Win32 error code such as the thread's last error.
func FromWin32(code uint32) error {
	return FromHRESULT(hresultFromWin32(code))
}

// FromError maps an error returned by go-ole, a [syscall.Errno], or one
// already produced by this package. Errors of any other kind become a
// [*StatusError] with E_FAIL that keeps the original as its cause.
func FromError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotImplemented) || errors.Is(err, ErrNotInstalled) {
		return err
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Code == StatusNotImplemented {
			return ErrNotImplemented
		}
		return statusErr
	}

	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		hr := hresultFromUintptr(oleErr.Code())
		switch {
		case hr.Succeeded():
			return nil
		case hr == StatusNotImplemented:
			return ErrNotImplemented
		}
		return newStatusError(hr, oleErr)
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return FromWin32(uint32(errno))
	}

	return newStatusError(StatusFail, ole.NewErrorWithSubError(StatusFail.raw(), err.Error(), err))
}

// Code returns the status code carried by err. A nil error is StatusOK and
// errors of unknown origin are StatusFail.
func Code(err error) HRESULT {
	if err == nil {
		return StatusOK
	}
	if errors.Is(err, ErrNotImplemented) {
		return StatusNotImplemented
	}
	if errors.Is(err, ErrNotInstalled) {
		return StatusClassNotRegistered
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}

	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		return hresultFromUintptr(oleErr.Code())
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return hresultFromWin32(uint32(errno))
	}

	return StatusFail
}

// isNotRegistered reports whether err means the component is absent.
func isNotRegistered(err error) bool {
	switch Code(err) {
	case StatusClassNotRegistered, StatusDLLNotFound:
		return true
	default:
		return false
	}
}
