//go:build windows

package vssetup

import (
	"syscall"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
	"golang.org/x/text/language"
)

var (
	procGetUserDefaultLCID = modkernel32.NewProc("GetUserDefaultLCID")
	procLocaleNameToLCID   = modkernel32.NewProc("LocaleNameToLCID")
)

// UserDefaultLCID returns the calling user's locale.
func UserDefaultLCID() LCID {
	r, _, _ := procGetUserDefaultLCID.Call()
	if r == 0 {
		return LocaleUserDefault
	}
	return LCID(r)
}

// LocaleLCID converts a language tag to an LCID.
func LocaleLCID(tag language.Tag) (LCID, error) {
	name, err := windows.UTF16PtrFromString(tag.String())
	if err != nil {
		return 0, errors.Wrapf(err, "locale %q", tag)
	}
	r, _, lastErr := procLocaleNameToLCID.Call(uintptr(unsafe.Pointer(name)), 0)
	if r == 0 {
		if errno, ok := lastErr.(syscall.Errno); ok && errno != 0 {
			return 0, errors.Wrapf(FromWin32(uint32(errno)), "locale %q", tag)
		}
		return 0, errors.Newf("unknown locale %q", tag)
	}
	return LCID(r), nil
}
