//go:build windows

package vssetup

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/go-ole/go-ole"
)

// NewApartment locks the calling goroutine to its OS thread and enters a
// single-threaded apartment. A thread that is already in one is accepted.
func NewApartment() (*Apartment, error) {
	runtime.LockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		if Code(err) != StatusFalse {
			runtime.UnlockOSThread()
			return nil, errors.Wrap(FromError(err), "initializing COM apartment")
		}
	}

	return &Apartment{uninit: func() {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
	}}, nil
}
