package vssetup

import (
	"time"

	"github.com/thoreinstein/vssetup/pkg/vssetup/bstr"
)

// Instance is one installed product. Every accessor queries the component
// again; nothing is cached.
type Instance struct {
	v        setupInstance
	calendar calendarFunc
}

func newInstance(v setupInstance, calendar calendarFunc) *Instance {
	if calendar == nil {
		calendar = fileTimeToSystemTime
	}
	return &Instance{v: v, calendar: calendar}
}

func (i *Instance) getString(call func(*bstr.String) HRESULT) (string, error) {
	if i == nil || i.v == nil {
		return "", FromHRESULT(StatusPointer)
	}
	var s bstr.String
	defer s.Free()

	if err := FromHRESULT(call(&s)); err != nil {
		return "", err
	}
	return s.String(), nil
}

// ID returns the unique instance identifier.
func (i *Instance) ID() (string, error) {
	return i.getString(func(s *bstr.String) HRESULT { return i.v.GetInstanceID(s) })
}

// InstallDate returns when the instance was installed, in UTC with
// millisecond precision.
func (i *Instance) InstallDate() (time.Time, error) {
	if i == nil || i.v == nil {
		return time.Time{}, FromHRESULT(StatusPointer)
	}

	var ft Filetime
	if err := FromHRESULT(i.v.GetInstallDate(&ft)); err != nil {
		return time.Time{}, err
	}

	var st Systemtime
	if err := i.calendar(&ft, &st); err != nil {
		return time.Time{}, FromError(err)
	}
	return st.Time(), nil
}

// Name returns the installation name, for example
// "VisualStudio/17.9.2+34622.214".
func (i *Instance) Name() (string, error) {
	return i.getString(func(s *bstr.String) HRESULT { return i.v.GetInstallationName(s) })
}

// Path returns the installation root directory.
func (i *Instance) Path() (string, error) {
	return i.getString(func(s *bstr.String) HRESULT { return i.v.GetInstallationPath(s) })
}

// Version returns the installation version.
func (i *Instance) Version() (string, error) {
	return i.getString(func(s *bstr.String) HRESULT { return i.v.GetInstallationVersion(s) })
}

// DisplayName returns the product name localized for lcid.
func (i *Instance) DisplayName(lcid LCID) (string, error) {
	return i.getString(func(s *bstr.String) HRESULT { return i.v.GetDisplayName(lcid, s) })
}

// Description returns the product description localized for lcid.
func (i *Instance) Description(lcid LCID) (string, error) {
	return i.getString(func(s *bstr.String) HRESULT { return i.v.GetDescription(lcid, s) })
}

// ResolvePath joins a path relative to the installation root.
func (i *Instance) ResolvePath(relative string) (string, error) {
	return i.getString(func(s *bstr.String) HRESULT { return i.v.ResolvePath(relative, s) })
}

// Close releases the instance. Calling Close more than once is safe.
func (i *Instance) Close() {
	if i == nil || i.v == nil {
		return
	}
	i.v.Release()
	i.v = nil
}
