package vssetup

import (
	"unsafe"

	"github.com/go-ole/go-ole"
)

// Vtable layouts follow Setup.Configuration.h. Slot order is ABI and must
// not change.

// ISetupConfiguration is the root of the component.
//
//	interface ISetupConfiguration : IUnknown
//	{
//	    HRESULT EnumInstances([out] IEnumSetupInstances** ppEnumInstances);
//	    HRESULT GetInstanceForCurrentProcess([out] ISetupInstance** ppInstance);
//	    HRESULT GetInstanceForPath([in] LPCWSTR wzPath, [out] ISetupInstance** ppInstance);
//	};
type ISetupConfiguration struct {
	ole.IUnknown
}

type ISetupConfigurationVtbl struct {
	ole.IUnknownVtbl
	EnumInstances                uintptr
	GetInstanceForCurrentProcess uintptr
	GetInstanceForPath           uintptr
}

func (v *ISetupConfiguration) VTable() *ISetupConfigurationVtbl {
	return (*ISetupConfigurationVtbl)(unsafe.Pointer(v.RawVTable))
}

// ISetupConfiguration2 adds enumeration of incomplete instances.
//
//	interface ISetupConfiguration2 : ISetupConfiguration
//	{
//	    HRESULT EnumAllInstances([out] IEnumSetupInstances** ppEnumInstances);
//	};
type ISetupConfiguration2 struct {
	ole.IUnknown
}

type ISetupConfiguration2Vtbl struct {
	ISetupConfigurationVtbl
	EnumAllInstances uintptr
}

func (v *ISetupConfiguration2) VTable() *ISetupConfiguration2Vtbl {
	return (*ISetupConfiguration2Vtbl)(unsafe.Pointer(v.RawVTable))
}

// IEnumSetupInstances is a forward cursor over instances.
//
//	interface IEnumSetupInstances : IUnknown
//	{
//	    HRESULT Next([in] ULONG celt, [out] ISetupInstance** rgelt, [out] ULONG* pceltFetched);
//	    HRESULT Skip([in] ULONG celt);
//	    HRESULT Reset(void);
//	    HRESULT Clone([out] IEnumSetupInstances** ppenum);
//	};
type IEnumSetupInstances struct {
	ole.IUnknown
}

type IEnumSetupInstancesVtbl struct {
	ole.IUnknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

func (v *IEnumSetupInstances) VTable() *IEnumSetupInstancesVtbl {
	return (*IEnumSetupInstancesVtbl)(unsafe.Pointer(v.RawVTable))
}

// ISetupInstance describes one installation.
//
//	interface ISetupInstance : IUnknown
//	{
//	    HRESULT GetInstanceId([out] BSTR* pbstrInstanceId);
//	    HRESULT GetInstallDate([out] LPFILETIME pInstallDate);
//	    HRESULT GetInstallationName([out] BSTR* pbstrInstallationName);
//	    HRESULT GetInstallationPath([out] BSTR* pbstrInstallationPath);
//	    HRESULT GetInstallationVersion([out] BSTR* pbstrInstallationVersion);
//	    HRESULT GetDisplayName([in] LCID lcid, [out] BSTR* pbstrDisplayName);
//	    HRESULT GetDescription([in] LCID lcid, [out] BSTR* pbstrDescription);
//	    HRESULT ResolvePath([in] LPCOLESTR pwszRelativePath, [out] BSTR* pbstrAbsolutePath);
//	};
type ISetupInstance struct {
	ole.IUnknown
}

type ISetupInstanceVtbl struct {
	ole.IUnknownVtbl
	GetInstanceId          uintptr
	GetInstallDate         uintptr
	GetInstallationName    uintptr
	GetInstallationPath    uintptr
	GetInstallationVersion uintptr
	GetDisplayName         uintptr
	GetDescription         uintptr
	ResolvePath            uintptr
}

func (v *ISetupInstance) VTable() *ISetupInstanceVtbl {
	return (*ISetupInstanceVtbl)(unsafe.Pointer(v.RawVTable))
}
