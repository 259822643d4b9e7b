//go:build !windows

package vssetup

// NewApartment returns an apartment that does nothing.
func NewApartment() (*Apartment, error) {
	return &Apartment{}, nil
}
