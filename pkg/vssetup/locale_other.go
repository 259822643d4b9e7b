//go:build !windows

package vssetup

import "golang.org/x/text/language"

// UserDefaultLCID returns LocaleUserDefault.
func UserDefaultLCID() LCID {
	return LocaleUserDefault
}

// LocaleLCID returns LocaleUserDefault for any tag since there is no
// locale database to consult.
func LocaleLCID(language.Tag) (LCID, error) {
	return LocaleUserDefault, nil
}
