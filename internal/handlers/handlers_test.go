package handlers

import (
	"errors"
	"runtime"
	"testing"
)

func TestDetectOS(t *testing.T) {
	if got := DetectOS(); got != runtime.GOOS {
		t.Errorf("DetectOS() = %q, want %q", got, runtime.GOOS)
	}
}

func TestForOS_NonEmpty(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "windows", "freebsd"} {
		if len(ForOS(goos)) == 0 {
			t.Errorf("ForOS(%q) returned no handlers", goos)
		}
	}
}

func TestForOS_UniquePrograms(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "windows"} {
		seen := make(map[string]bool)
		for _, h := range ForOS(goos) {
			if seen[h.Program] {
				t.Errorf("ForOS(%q): duplicate program %q", goos, h.Program)
			}
			seen[h.Program] = true
		}
	}
}

func TestForOS_FirstIsPlatformDefault(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "windows"} {
		hs := ForOS(goos)
		if hs[0].Source != "platform default" {
			t.Errorf("ForOS(%q)[0].Source = %q, want %q", goos, hs[0].Source, "platform default")
		}
	}
}

func TestFromEnv(t *testing.T) {
	h := FromEnv("BROWSER", "firefox")
	if h.Program != "firefox" {
		t.Errorf("Program = %q, want firefox", h.Program)
	}
	if h.Source != "$BROWSER" {
		t.Errorf("Source = %q, want $BROWSER", h.Source)
	}
}

func TestProbe(t *testing.T) {
	hs := []Handler{
		{Name: "present", Program: "present"},
		{Name: "absent", Program: "absent"},
	}
	statuses := Probe(hs, func(name string) (string, error) {
		if name == "present" {
			return "/usr/bin/present", nil
		}
		return "", errors.New("not found")
	})
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	if !statuses[0].Found || statuses[0].Path != "/usr/bin/present" {
		t.Errorf("present: Found=%v Path=%q", statuses[0].Found, statuses[0].Path)
	}
	if statuses[1].Found {
		t.Error("absent: Found=true, want false")
	}
}
