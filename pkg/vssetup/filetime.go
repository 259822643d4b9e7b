package vssetup

import "time"

// Filetime is a FILETIME: 100-nanosecond intervals since 1601-01-01 UTC.
type Filetime struct {
	LowDateTime  uint32
	HighDateTime uint32
}

// Ticks returns the value as a single 64-bit count.
func (ft Filetime) Ticks() int64 {
	return int64(uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime))
}

// Systemtime is a SYSTEMTIME in UTC.
type Systemtime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// Time returns st as a UTC time.
func (st Systemtime) Time() time.Time {
	return time.Date(
		int(st.Year), time.Month(st.Month), int(st.Day),
		int(st.Hour), int(st.Minute), int(st.Second),
		int(st.Milliseconds)*int(time.Millisecond),
		time.UTC)
}

// calendarFunc converts a Filetime to calendar form.
type calendarFunc func(*Filetime, *Systemtime) error

func systemtimeFromTime(t time.Time, st *Systemtime) {
	t = t.UTC()
	*st = Systemtime{
		Year:         uint16(t.Year()),
		Month:        uint16(t.Month()),
		DayOfWeek:    uint16(t.Weekday()),
		Day:          uint16(t.Day()),
		Hour:         uint16(t.Hour()),
		Minute:       uint16(t.Minute()),
		Second:       uint16(t.Second()),
		Milliseconds: uint16(t.Nanosecond() / int(time.Millisecond)),
	}
}
