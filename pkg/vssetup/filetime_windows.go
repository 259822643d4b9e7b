//go:build windows

package vssetup

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

var (
	modkernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procFileTimeToSystemTime = modkernel32.NewProc("FileTimeToSystemTime")
)

func fileTimeToSystemTime(ft *Filetime, st *Systemtime) error {
	r, _, lastErr := procFileTimeToSystemTime.Call(
		uintptr(unsafe.Pointer(ft)),
		uintptr(unsafe.Pointer(st)))
	if r != 0 {
		return nil
	}

	hr := StatusFail
	if errno, ok := lastErr.(syscall.Errno); ok && errno != 0 {
		hr = hresultFromWin32(uint32(errno))
	}
	return newStatusError(hr, ole.NewErrorWithDescription(hr.raw(), "failed to convert install time to system time"))
}
