//go:build darwin

package opencmd

// openCommand is macOS's built-in opener.
const openCommand = "open"

func (r *Resolver) sysOpen(target PathOrURI) (CommandSpec, error) {
	return r.OpenWith(openCommand, target)
}
