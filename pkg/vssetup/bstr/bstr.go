// Package bstr owns BSTR strings exchanged with COM components.
//
// A BSTR is a length-prefixed UTF-16 string allocated by the system string
// allocator. Whoever allocated it last owns it. [String] holds at most one
// such allocation and frees it exactly once.
package bstr

import (
	"encoding/binary"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/text/encoding/unicode"
)

// String owns a single BSTR. The zero value is an empty, null string.
//
// A String must not be copied after its first use.
type String struct {
	p *uint16
}

// Alloc allocates a new BSTR holding s and returns the raw pointer.
// Ownership passes to the caller, typically by writing it into an
// out-parameter.
func Alloc(s string) *uint16 {
	return sysAllocString(s)
}

// FromString allocates a new String holding s.
func FromString(s string) *String {
	return &String{p: sysAllocString(s)}
}

// Len returns the length in UTF-16 code units. A null string has length 0.
func (s *String) Len() int {
	if s == nil || s.p == nil {
		return 0
	}
	return int(sysStringLen(s.p))
}

// ByteLen returns the length in bytes, excluding the terminator.
func (s *String) ByteLen() int {
	return 2 * s.Len()
}

// IsNull reports whether no allocation is held.
func (s *String) IsNull() bool {
	return s == nil || s.p == nil
}

// Ptr returns the raw pointer for use as an [in] parameter.
// The String keeps ownership.
func (s *String) Ptr() *uint16 {
	if s == nil {
		return nil
	}
	return s.p
}

// Out returns the handle as an out-parameter for a native call.
// Any value already held is freed first.
func (s *String) Out() **uint16 {
	s.Free()
	return &s.p
}

// Free releases the allocation, if any. Calling Free more than once is safe.
func (s *String) Free() {
	if s == nil || s.p == nil {
		return
	}
	sysFreeString(s.p)
	s.p = nil
}

// String decodes exactly Len code units. Unpaired surrogates are replaced
// with U+FFFD.
func (s *String) String() string {
	n := s.Len()
	if n == 0 {
		return ""
	}
	return decode(unsafe.Slice(s.p, n))
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func decode(units []uint16) string {
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}

	out, err := utf16le.NewDecoder().Bytes(buf)
	if err != nil {
		return string(utf16.Decode(units))
	}
	return string(out)
}
