//go:build windows

package vssetup

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"github.com/thoreinstein/vssetup/pkg/vssetup/bstr"
)

func createSetupConfiguration() (setupConfiguration, error) {
	iu, err := ole.CreateInstance(&CLSIDSetupConfiguration, &IIDSetupConfiguration)
	if err != nil {
		return nil, err
	}
	return &comConfiguration{v: (*ISetupConfiguration)(unsafe.Pointer(iu))}, nil
}

func queryInterface(u *ole.IUnknown, iid *ole.GUID) (unsafe.Pointer, HRESULT) {
	var out unsafe.Pointer
	hr, _, _ := syscall.SyscallN(
		u.VTable().QueryInterface,
		uintptr(unsafe.Pointer(u)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	return out, hresultFromUintptr(hr)
}

func utf16Arg(s string) (*uint16, HRESULT) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, StatusInvalidArg
	}
	return p, StatusOK
}

type comConfiguration struct {
	v *ISetupConfiguration
}

func (c *comConfiguration) EnumInstances() (enumSetupInstances, HRESULT) {
	var out *IEnumSetupInstances
	hr, _, _ := syscall.SyscallN(
		c.v.VTable().EnumInstances,
		uintptr(unsafe.Pointer(c.v)),
		uintptr(unsafe.Pointer(&out)))
	return wrapEnum(out, hresultFromUintptr(hr))
}

func (c *comConfiguration) GetInstanceForCurrentProcess() (setupInstance, HRESULT) {
	var out *ISetupInstance
	hr, _, _ := syscall.SyscallN(
		c.v.VTable().GetInstanceForCurrentProcess,
		uintptr(unsafe.Pointer(c.v)),
		uintptr(unsafe.Pointer(&out)))
	return wrapInstance(out, hresultFromUintptr(hr))
}

func (c *comConfiguration) GetInstanceForPath(path string) (setupInstance, HRESULT) {
	p, status := utf16Arg(path)
	if status.Failed() {
		return nil, status
	}
	var out *ISetupInstance
	hr, _, _ := syscall.SyscallN(
		c.v.VTable().GetInstanceForPath,
		uintptr(unsafe.Pointer(c.v)),
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(&out)))
	return wrapInstance(out, hresultFromUintptr(hr))
}

func (c *comConfiguration) QueryConfiguration2() (setupConfiguration2, bool) {
	p, hr := queryInterface(&c.v.IUnknown, &IIDSetupConfiguration2)
	if hr.Failed() || p == nil {
		return nil, false
	}
	return &comConfiguration2{v: (*ISetupConfiguration2)(p)}, true
}

func (c *comConfiguration) Release() int32 {
	return c.v.Release()
}

type comConfiguration2 struct {
	v *ISetupConfiguration2
}

func (c *comConfiguration2) EnumAllInstances() (enumSetupInstances, HRESULT) {
	var out *IEnumSetupInstances
	hr, _, _ := syscall.SyscallN(
		c.v.VTable().EnumAllInstances,
		uintptr(unsafe.Pointer(c.v)),
		uintptr(unsafe.Pointer(&out)))
	return wrapEnum(out, hresultFromUintptr(hr))
}

func (c *comConfiguration2) Release() int32 {
	return c.v.Release()
}

func wrapEnum(v *IEnumSetupInstances, hr HRESULT) (enumSetupInstances, HRESULT) {
	if hr.Failed() || v == nil {
		return nil, hr
	}
	return &comEnum{v: v}, hr
}

type comEnum struct {
	v *IEnumSetupInstances
}

func (e *comEnum) Next(celt uint32) ([]setupInstance, HRESULT) {
	if celt == 0 {
		return nil, StatusOK
	}
	items := make([]*ISetupInstance, celt)
	var fetched uint32
	hr, _, _ := syscall.SyscallN(
		e.v.VTable().Next,
		uintptr(unsafe.Pointer(e.v)),
		uintptr(celt),
		uintptr(unsafe.Pointer(&items[0])),
		uintptr(unsafe.Pointer(&fetched)))

	status := hresultFromUintptr(hr)
	if status.Failed() {
		return nil, status
	}

	out := make([]setupInstance, 0, fetched)
	for _, item := range items[:min(fetched, celt)] {
		if item != nil {
			out = append(out, &comInstance{v: item})
		}
	}
	return out, status
}

func (e *comEnum) Release() int32 {
	return e.v.Release()
}

func wrapInstance(v *ISetupInstance, hr HRESULT) (setupInstance, HRESULT) {
	if hr.Failed() || v == nil {
		return nil, hr
	}
	return &comInstance{v: v}, hr
}

type comInstance struct {
	v *ISetupInstance
}

func (i *comInstance) getString(slot uintptr, out *bstr.String) HRESULT {
	hr, _, _ := syscall.SyscallN(
		slot,
		uintptr(unsafe.Pointer(i.v)),
		uintptr(unsafe.Pointer(out.Out())))
	return hresultFromUintptr(hr)
}

func (i *comInstance) getLocalized(slot uintptr, lcid LCID, out *bstr.String) HRESULT {
	hr, _, _ := syscall.SyscallN(
		slot,
		uintptr(unsafe.Pointer(i.v)),
		uintptr(lcid),
		uintptr(unsafe.Pointer(out.Out())))
	return hresultFromUintptr(hr)
}

func (i *comInstance) GetInstanceID(out *bstr.String) HRESULT {
	return i.getString(i.v.VTable().GetInstanceId, out)
}

func (i *comInstance) GetInstallDate(out *Filetime) HRESULT {
	hr, _, _ := syscall.SyscallN(
		i.v.VTable().GetInstallDate,
		uintptr(unsafe.Pointer(i.v)),
		uintptr(unsafe.Pointer(out)))
	return hresultFromUintptr(hr)
}

func (i *comInstance) GetInstallationName(out *bstr.String) HRESULT {
	return i.getString(i.v.VTable().GetInstallationName, out)
}

func (i *comInstance) GetInstallationPath(out *bstr.String) HRESULT {
	return i.getString(i.v.VTable().GetInstallationPath, out)
}

func (i *comInstance) GetInstallationVersion(out *bstr.String) HRESULT {
	return i.getString(i.v.VTable().GetInstallationVersion, out)
}

func (i *comInstance) GetDisplayName(lcid LCID, out *bstr.String) HRESULT {
	return i.getLocalized(i.v.VTable().GetDisplayName, lcid, out)
}

func (i *comInstance) GetDescription(lcid LCID, out *bstr.String) HRESULT {
	return i.getLocalized(i.v.VTable().GetDescription, lcid, out)
}

func (i *comInstance) ResolvePath(rel string, out *bstr.String) HRESULT {
	p, status := utf16Arg(rel)
	if status.Failed() {
		return status
	}
	hr, _, _ := syscall.SyscallN(
		i.v.VTable().ResolvePath,
		uintptr(unsafe.Pointer(i.v)),
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(out.Out())))
	return hresultFromUintptr(hr)
}

func (i *comInstance) Release() int32 {
	return i.v.Release()
}
