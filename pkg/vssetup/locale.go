package vssetup

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"
)

// LCID is a Windows locale identifier.
type LCID uint32

// LocaleUserDefault selects the calling user's locale.
const LocaleUserDefault LCID = 0x0400

// ParseLocale resolves a BCP 47 tag such as "en-US" to an LCID. An empty tag
// selects the user's default locale.
func ParseLocale(tag string) (LCID, error) {
	if tag == "" {
		return UserDefaultLCID(), nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing locale %q", tag)
	}
	return LocaleLCID(t)
}
