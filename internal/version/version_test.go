package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.2.3", "abc123", "2026-01-15")

	if info.Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", info.Version, "1.2.3")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2026-01-15" {
		t.Errorf("Date = %q, want %q", info.Date, "2026-01-15")
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("OS/Arch = %s/%s", info.OS, info.Arch)
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc", "today")
	want := "flow 1.0.0 (commit: abc, built: today)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInfoFullString(t *testing.T) {
	full := NewInfo("1.0.0", "abc", "today").FullString()
	for _, want := range []string{"flow 1.0.0", "Commit:   abc", "Built:    today", "Go:", "OS/Arch:"} {
		if !strings.Contains(full, want) {
			t.Errorf("FullString() missing %q:\n%s", want, full)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	out, err := NewInfo("1.0.0", "abc", "today").JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON() produced invalid JSON: %v", err)
	}
	if decoded["version"] != "1.0.0" || decoded["go_version"] == "" {
		t.Errorf("decoded = %v", decoded)
	}
}
