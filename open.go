// Package opencmd builds commands that open paths and URIs in the default
// system handler.
//
// The entry points return an unexecuted CommandSpec that the caller can run
// directly, or turn into an exec.Cmd first to attach stdin/stdout/stderr
// streams.
//
// This package used https://dwheeler.com/essays/open-files-urls.html as a
// reference.
package opencmd

import (
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

const (
	// BrowserEnv is the environment variable checked when opening in a web
	// browser.
	BrowserEnv = "BROWSER"
	// EditorEnv is the environment variable checked when opening in a text
	// editor.
	EditorEnv = "EDITOR"
)

// CommandSpec describes a command to run: a program name and its ordered
// argument list. It performs no I/O and is never executed by this package;
// running it is the caller's job.
type CommandSpec struct {
	Program string
	Args    []string
}

// Cmd builds an exec.Cmd for the described command. It is not started.
func (c CommandSpec) Cmd() *exec.Cmd {
	return exec.Command(c.Program, c.Args...)
}

// String renders the spec in shell-like form for display.
func (c CommandSpec) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// Resolver decides which program and arguments open a given target. The zero
// value consults the real process environment and search path. The function
// fields exist so tests can simulate override presence and missing
// executables without touching the process environment.
type Resolver struct {
	// LookupEnv reads an environment variable. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	// LookPath locates an executable on the search path. Defaults to
	// exec.LookPath.
	LookPath func(name string) (string, error)
	// Logger receives debug records during resolution. nil disables logging.
	Logger *slog.Logger
}

// Open resolves the command for the default system handler, ignoring the
// BROWSER and EDITOR environment variables. Use OpenBrowser or OpenEditor to
// consider those.
func (r *Resolver) Open(target PathOrURI) (CommandSpec, error) {
	return r.sysOpen(target)
}

// OpenBrowser resolves the command for the browser named by BrowserEnv, or
// the default system handler if it is unset.
func (r *Resolver) OpenBrowser(target PathOrURI) (CommandSpec, error) {
	return r.OpenEnv(BrowserEnv, target)
}

// OpenEditor resolves the command for the editor named by EditorEnv, or the
// default system handler if it is unset.
func (r *Resolver) OpenEditor(target PathOrURI) (CommandSpec, error) {
	return r.OpenEnv(EditorEnv, target)
}

// OpenEnv resolves the command for the program named by the environment
// variable env. If env is set to a non-empty value, that program is used and
// must exist on the search path — a missing program is an error, never a
// silent fallback. If env is unset or empty, the default system handler is
// used instead.
func (r *Resolver) OpenEnv(env string, target PathOrURI) (CommandSpec, error) {
	if cmd, ok := r.lookupEnv(env); ok && cmd != "" {
		r.debug("using handler from environment", "var", env, "exe", cmd)
		return r.OpenWith(cmd, target)
	}
	r.debug("environment variable not set, using system handler", "var", env)
	return r.sysOpen(target)
}

// OpenWith resolves the command for an explicitly named program. The program
// is existence-checked eagerly so a missing executable is reported here
// rather than at spawn time.
func (r *Resolver) OpenWith(program string, target PathOrURI) (CommandSpec, error) {
	if err := r.ensure(program); err != nil {
		return CommandSpec{}, err
	}
	r.debug("resolved open command", "exe", program, "target", target.String())
	return CommandSpec{Program: program, Args: []string{target.String()}}, nil
}

// ensure checks that an executable of the given name is resolvable on the
// search path.
func (r *Resolver) ensure(name string) error {
	r.debug("checking executable exists", "exe", name)
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath(name); err != nil {
		return &NotFoundError{Exe: name, Err: err}
	}
	return nil
}

func (r *Resolver) lookupEnv(key string) (string, bool) {
	if r.LookupEnv != nil {
		return r.LookupEnv(key)
	}
	return os.LookupEnv(key)
}

func (r *Resolver) debug(msg string, args ...any) {
	if r.Logger != nil {
		r.Logger.Debug(msg, args...)
	}
}

var defaultResolver Resolver

// Open returns the command that opens target in the default system handler.
// The target string is interpreted per Parse.
func Open(target string) (CommandSpec, error) {
	return defaultResolver.Open(Parse(target))
}

// OpenBrowser returns the command that opens target in the browser named by
// BrowserEnv, or the default system handler if it is unset.
func OpenBrowser(target string) (CommandSpec, error) {
	return defaultResolver.OpenBrowser(Parse(target))
}

// OpenEditor returns the command that opens target in the editor named by
// EditorEnv, or the default system handler if it is unset.
func OpenEditor(target string) (CommandSpec, error) {
	return defaultResolver.OpenEditor(Parse(target))
}
