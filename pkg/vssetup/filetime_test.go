package vssetup

import (
	"testing"
	"time"
)

func TestFiletime_Ticks(t *testing.T) {
	ft := Filetime{LowDateTime: 0x3C120440, HighDateTime: 0x01D6431B}
	if got := ft.Ticks(); got != 132367023305000000 {
		t.Errorf("Ticks() = %d, want 132367023305000000", got)
	}
}

func TestSystemtime_Time(t *testing.T) {
	st := Systemtime{Year: 2024, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 58, Milliseconds: 999}
	want := time.Date(2024, time.February, 29, 23, 59, 58, 999*int(time.Millisecond), time.UTC)

	if got := st.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestFileTimeToSystemTime(t *testing.T) {
	tests := []struct {
		name string
		ft   Filetime
		want time.Time
	}{
		{
			name: "install date",
			ft:   Filetime{LowDateTime: 0x3C120440, HighDateTime: 0x01D6431B},
			want: time.Date(2020, time.June, 15, 13, 45, 30, 500*int(time.Millisecond), time.UTC),
		},
		{
			name: "epoch",
			ft:   Filetime{},
			want: time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st Systemtime
			if err := fileTimeToSystemTime(&tt.ft, &st); err != nil {
				t.Fatalf("fileTimeToSystemTime() error = %v", err)
			}
			if got := st.Time(); !got.Equal(tt.want) {
				t.Errorf("Time() = %v, want %v", got, tt.want)
			}
		})
	}
}
