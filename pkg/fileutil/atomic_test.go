package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func assertOnly(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if len(got) != len(names) {
		t.Fatalf("dir holds %v, want %v", got, names)
	}
	for i := range names {
		if got[i] != names[i] {
			t.Fatalf("dir holds %v, want %v", got, names)
		}
	}
}

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		old  string
		data string
		perm os.FileMode
	}{
		{name: "new file", data: "version: 1\n", perm: 0o644},
		{name: "replace", old: "format: json\n", data: "format: text\n", perm: 0o644},
		{name: "empty", old: "x", data: "", perm: 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if tt.old != "" {
				if err := os.WriteFile(path, []byte(tt.old), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			if err := AtomicWriteFile(path, []byte(tt.data), tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil || string(got) != tt.data {
				t.Errorf("content = %q, %v; want %q", got, err, tt.data)
			}
			if runtime.GOOS != "windows" {
				if info, err := os.Stat(path); err != nil || info.Mode().Perm() != tt.perm {
					t.Errorf("perm = %v, %v; want %v", info.Mode().Perm(), err, tt.perm)
				}
			}
			assertOnly(t, dir, "config.yaml")
		})
	}
}

func TestWriteAtomic_FailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("locale: de-DE\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	errEncode := errors.New("encode failed")
	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "locale: ")
		return errEncode
	})
	if !errors.Is(err, errEncode) {
		t.Fatalf("WriteAtomic() error = %v, want %v", err, errEncode)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "locale: de-DE\n" {
		t.Errorf("original changed to %q", got)
	}
	assertOnly(t, dir, "config.yaml")
}

func TestAtomicWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")
	if err := AtomicWriteFile(path, []byte("x"), 0o644); err == nil {
		t.Error("AtomicWriteFile() into a missing directory succeeded")
	}
}

func TestAtomicWriteYAML(t *testing.T) {
	type profile struct {
		Locale string `yaml:"locale"`
	}
	v := struct {
		Version  int                `yaml:"version"`
		Format   string             `yaml:"format"`
		Profiles map[string]profile `yaml:"profiles"`
	}{
		Version:  1,
		Format:   "json",
		Profiles: map[string]profile{"ci": {Locale: "en-US"}},
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := AtomicWriteYAML(path, v); err != nil {
		t.Fatalf("AtomicWriteYAML() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "version: 1\nformat: json\nprofiles:\n  ci:\n    locale: en-US\n"
	if string(got) != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestAtomicWriteYAML_Unmarshalable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := AtomicWriteYAML(path, map[string]any{"fn": func() {}}); err == nil {
		t.Error("AtomicWriteYAML() with a func value succeeded")
	}
	assertOnly(t, dir)
}
