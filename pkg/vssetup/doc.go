// Package vssetup locates installed Visual Studio instances through the
// Setup Configuration COM component shipped with the Visual Studio installer.
//
// The component may be missing entirely. A [Configuration] created on a
// machine without it is valid and simply reports no instances.
//
// # Basic Usage
//
//	config, err := vssetup.NewWithApartment()
//	if err != nil {
//		return err
//	}
//	defer config.Close()
//
//	instances, err := config.Instances(false)
//	if err != nil {
//		return err
//	}
//	defer instances.Close()
//
//	for instance := range instances.All() {
//		path, err := instance.Path()
//		instance.Close()
//		if err != nil {
//			return err
//		}
//		fmt.Println(path)
//	}
//
// # Errors
//
// Failures are normalized to a closed set: [ErrNotInstalled],
// [ErrNotImplemented], or a [*StatusError] carrying the HRESULT. Use
// [errors.Is] and [errors.As] to tell them apart.
//
// # Threading
//
// Everything derived from a Configuration must be used from the goroutine
// that created it, and that goroutine must stay on one OS thread while the
// single-threaded apartment is active. [NewWithApartment] locks the thread
// and releases the apartment after the root component on Close.
//
// On platforms other than Windows the component is never present.
package vssetup
