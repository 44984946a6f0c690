// ABOUTME: Tests for config loading, merging, env expansion and key parsing
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	off := false
	global := &Settings{QuitKey: "x", LogLevel: "debug"}
	project := &Settings{QuitKey: "^D", ShowHex: &off}

	result := merge(merge(Defaults(), global), project)

	if result.QuitKey != "^D" {
		t.Errorf("QuitKey = %q, want %q", result.QuitKey, "^D")
	}
	if result.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", result.LogLevel, "debug")
	}
	if result.SuspendKey != "^Z" {
		t.Errorf("SuspendKey = %q, want default %q", result.SuspendKey, "^Z")
	}
	if result.ShowHex == nil || *result.ShowHex {
		t.Error("ShowHex should be overridden to false")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestMerge_DoesNotAliasShowHex(t *testing.T) {
	t.Parallel()

	on := true
	result := merge(&Settings{}, &Settings{ShowHex: &on})
	on = false
	if !*result.ShowHex {
		t.Error("merged ShowHex aliases the source pointer")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if s == nil {
		t.Fatal("expected zero Settings, got nil")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "quit_key: [unclosed")

	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvLogLevel, "")

	writeFile(t, filepath.Join(home, ".rawkeys", "config.yaml"), "quit_key: x\nlog_level: warn\n")
	writeFile(t, filepath.Join(project, ".rawkeys", "config.yaml"), "quit_key: y\nshow_hex: false\n")

	s, err := Load(project)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if s.QuitKey != "y" {
		t.Errorf("QuitKey = %q, want %q", s.QuitKey, "y")
	}
	if s.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "warn")
	}
	if s.ShowHex == nil || *s.ShowHex {
		t.Error("ShowHex should be false from project config")
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvLogLevel, "")

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if s.QuitKey != "q" || s.SuspendKey != "^Z" || s.LogLevel != "info" {
		t.Errorf("Load() = %+v, want defaults", s)
	}
}

func TestLoad_EnvLogLevelOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvLogLevel, "debug")

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "debug")
	}
}

func TestLoadFile_ExpandsEnv(t *testing.T) {
	t.Setenv("RAWKEYS_TEST_DEV", "/dev/pts/9")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "tty: ${RAWKEYS_TEST_DEV}\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}
	if s.TTY != "/dev/pts/9" {
		t.Errorf("TTY = %q, want %q", s.TTY, "/dev/pts/9")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() of a missing file: expected error")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	t.Setenv("RAWKEYS_TEST_UNSET", "")

	if got := expandEnv("${RAWKEYS_TEST_UNSET}/x"); got != "/x" {
		t.Errorf("expandEnv() = %q, want %q", got, "/x")
	}
}

func TestResolveEnvVars_OnlyDevicePath(t *testing.T) {
	t.Setenv("RAWKEYS_TEST_DEV", "/dev/pts/3")

	s := &Settings{TTY: "${RAWKEYS_TEST_DEV}", LogLevel: "${RAWKEYS_TEST_DEV}", QuitKey: "${RAWKEYS_TEST_DEV}"}
	ResolveEnvVars(s)

	if s.TTY != "/dev/pts/3" {
		t.Errorf("TTY = %q, want %q", s.TTY, "/dev/pts/3")
	}
	if s.LogLevel != "${RAWKEYS_TEST_DEV}" {
		t.Errorf("LogLevel = %q, want it left unexpanded", s.LogLevel)
	}
	if s.QuitKey != "${RAWKEYS_TEST_DEV}" {
		t.Errorf("QuitKey = %q, want it left unexpanded", s.QuitKey)
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    byte
		wantErr bool
	}{
		{in: "q", want: 'q'},
		{in: "^C", want: 0x03},
		{in: "^c", want: 0x03},
		{in: "^Z", want: 0x1a},
		{in: "^[", want: 0x1b},
		{in: "^?", want: 0x7f},
		{in: "^@", want: 0x00},
		{in: "", wantErr: true},
		{in: "ab", wantErr: true},
		{in: "^1", wantErr: true},
		{in: "^AB", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}
