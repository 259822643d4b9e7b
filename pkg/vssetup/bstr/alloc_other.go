//go:build !windows

package bstr

import (
	"unicode/utf16"
	"unsafe"
)

// Without oleaut32 the string lives on the Go heap in the same layout: a
// uint32 byte count, the UTF-16 data, then a NUL. The pointer handed out
// addresses the first code unit.

func sysAllocString(s string) *uint16 {
	units := utf16.Encode([]rune(s))

	buf := make([]uint32, 1+(len(units)+2)/2)
	buf[0] = uint32(2 * len(units))

	data := unsafe.Slice((*uint16)(unsafe.Pointer(&buf[1])), len(units)+1)
	copy(data, units)
	return &data[0]
}

// The garbage collector reclaims the buffer once no String references it.
func sysFreeString(*uint16) {}

func sysStringLen(p *uint16) uint32 {
	return *(*uint32)(unsafe.Add(unsafe.Pointer(p), -4)) / 2
}
