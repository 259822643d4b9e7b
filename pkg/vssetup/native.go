package vssetup

import "github.com/thoreinstein/vssetup/pkg/vssetup/bstr"

// The wrappers talk to the component through these interfaces so that they
// can be driven by in-process fakes. The Windows implementations in
// com_windows.go call straight through the vtables.

type setupConfiguration interface {
	EnumInstances() (enumSetupInstances, HRESULT)
	GetInstanceForCurrentProcess() (setupInstance, HRESULT)
	GetInstanceForPath(path string) (setupInstance, HRESULT)
	// QueryConfiguration2 returns the extended interface when the
	// component implements it.
	QueryConfiguration2() (setupConfiguration2, bool)
	Release() int32
}

type setupConfiguration2 interface {
	EnumAllInstances() (enumSetupInstances, HRESULT)
	Release() int32
}

type enumSetupInstances interface {
	// Next fetches up to celt instances. Fewer than celt with StatusFalse
	// means the cursor is exhausted.
	Next(celt uint32) ([]setupInstance, HRESULT)
	Release() int32
}

type setupInstance interface {
	GetInstanceID(out *bstr.String) HRESULT
	GetInstallDate(out *Filetime) HRESULT
	GetInstallationName(out *bstr.String) HRESULT
	GetInstallationPath(out *bstr.String) HRESULT
	GetInstallationVersion(out *bstr.String) HRESULT
	GetDisplayName(lcid LCID, out *bstr.String) HRESULT
	GetDescription(lcid LCID, out *bstr.String) HRESULT
	ResolvePath(rel string, out *bstr.String) HRESULT
	Release() int32
}

// createFunc instantiates the component root.
type createFunc func() (setupConfiguration, error)
