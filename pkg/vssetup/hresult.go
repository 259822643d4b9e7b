package vssetup

import "fmt"

// HRESULT is a COM status code. Negative values are failures.
type HRESULT int32

// Status codes the package gives meaning to.
const (
	StatusOK    HRESULT = 0
	StatusFalse HRESULT = 1

	StatusNotImplemented HRESULT = -0x7FFFBFFF // 0x80004001 E_NOTIMPL
	StatusNoInterface    HRESULT = -0x7FFFBFFE // 0x80004002 E_NOINTERFACE
	StatusPointer        HRESULT = -0x7FFFBFFD // 0x80004003 E_POINTER
	StatusFail           HRESULT = -0x7FFFBFFB // 0x80004005 E_FAIL
	StatusInvalidArg     HRESULT = -0x7FF8FFA9 // 0x80070057 E_INVALIDARG

	// StatusClassNotRegistered and StatusDLLNotFound mean the component
	// is not installed.
	StatusClassNotRegistered HRESULT = -0x7FFBFEAC // 0x80040154 REGDB_E_CLASSNOTREG
	StatusDLLNotFound        HRESULT = -0x7FFBFE08 // 0x800401F8 CO_E_DLLNOTFOUND

	// StatusElementNotFound is returned when no instance owns a path.
	StatusElementNotFound HRESULT = -0x7FF8FB70 // 0x80070490
)

// Succeeded reports whether hr is a success code.
func (hr HRESULT) Succeeded() bool {
	return hr >= 0
}

// Failed reports whether hr is a failure code.
func (hr HRESULT) Failed() bool {
	return hr < 0
}

// String formats hr as an unsigned hexadecimal code.
func (hr HRESULT) String() string {
	return fmt.Sprintf("0x%08X", uint32(hr))
}

// raw returns hr as the unsigned register value COM calls return.
func (hr HRESULT) raw() uintptr {
	return uintptr(uint32(hr))
}

func hresultFromUintptr(r uintptr) HRESULT {
	return HRESULT(int32(uint32(r)))
}

// hresultFromWin32 mirrors the HRESULT_FROM_WIN32 macro.
func hresultFromWin32(code uint32) HRESULT {
	if int32(code) <= 0 {
		return HRESULT(int32(code))
	}
	return HRESULT(int32(code&0x0000FFFF | 7<<16 | 0x80000000))
}
