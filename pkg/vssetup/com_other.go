//go:build !windows

package vssetup

// The component only exists on Windows.
func createSetupConfiguration() (setupConfiguration, error) {
	return nil, FromHRESULT(StatusClassNotRegistered)
}
