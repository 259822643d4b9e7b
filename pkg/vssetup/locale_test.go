package vssetup

import "testing"

func TestParseLocale(t *testing.T) {
	got, err := ParseLocale("")
	if err != nil {
		t.Fatalf("ParseLocale(\"\") error = %v", err)
	}
	if got != UserDefaultLCID() {
		t.Errorf("ParseLocale(\"\") = %#x, want %#x", got, UserDefaultLCID())
	}

	if _, err := ParseLocale("not a locale!"); err == nil {
		t.Error("ParseLocale() with a malformed tag should fail")
	}
}
