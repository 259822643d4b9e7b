//go:build !windows

package vssetup

import "time"

// Seconds between 1601-01-01 and 1970-01-01.
const filetimeEpochDelta = 11644473600

func fileTimeToSystemTime(ft *Filetime, st *Systemtime) error {
	ticks := ft.Ticks()
	if ticks < 0 {
		return FromHRESULT(StatusInvalidArg)
	}
	secs := ticks / 1e7
	rem := ticks % 1e7
	systemtimeFromTime(time.Unix(secs-filetimeEpochDelta, rem*100), st)
	return nil
}
