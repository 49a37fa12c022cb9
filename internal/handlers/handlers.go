// Package handlers describes the default-handler programs opencmd knows
// about, per operating system, and probes their availability.
package handlers

import (
	"os/exec"
	"runtime"
)

// Handler describes one program that can open a target.
type Handler struct {
	// Name is the short identifier shown to users.
	Name string
	// Program is the executable looked up on the search path.
	Program string
	// Args are the leading arguments placed before the target.
	Args []string
	// UsesURI indicates the target is passed in file://-style URI form
	// rather than as a plain path string.
	UsesURI bool
	// Source explains where the handler comes from ("platform default",
	// "fallback", or the name of an environment variable).
	Source string
}

// DetectOS returns the current operating system identifier.
func DetectOS() string {
	return runtime.GOOS
}

// ForOS returns the known handlers for the given operating system, most
// preferred first.
func ForOS(goos string) []Handler {
	switch goos {
	case "windows":
		return WindowsHandlers()
	case "darwin":
		return DarwinHandlers()
	default:
		return LinuxHandlers()
	}
}

// Current returns the known handlers for the running operating system.
func Current() []Handler {
	return ForOS(DetectOS())
}

// FromEnv returns a handler for an environment-variable override, given the
// variable name and its value.
func FromEnv(envVar, program string) Handler {
	return Handler{
		Name:    program,
		Program: program,
		Source:  "$" + envVar,
	}
}

// Status is the result of probing one handler on the search path.
type Status struct {
	Handler
	// Path is the resolved executable path when Found.
	Path string
	// Found reports whether the program is on the search path.
	Found bool
}

// Probe checks each handler against the search path. lookPath defaults to
// exec.LookPath when nil.
func Probe(hs []Handler, lookPath func(string) (string, error)) []Status {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	statuses := make([]Status, 0, len(hs))
	for _, h := range hs {
		s := Status{Handler: h}
		if p, err := lookPath(h.Program); err == nil {
			s.Path = p
			s.Found = true
		}
		statuses = append(statuses, s)
	}
	return statuses
}
