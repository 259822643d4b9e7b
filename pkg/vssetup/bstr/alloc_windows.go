//go:build windows

package bstr

import (
	"unsafe"

	"github.com/go-ole/go-ole"
)

func sysAllocString(s string) *uint16 {
	return (*uint16)(unsafe.Pointer(ole.SysAllocStringLen(s)))
}

func sysFreeString(p *uint16) {
	_ = ole.SysFreeString((*int16)(unsafe.Pointer(p)))
}

func sysStringLen(p *uint16) uint32 {
	return ole.SysStringLen((*int16)(unsafe.Pointer(p)))
}
