//go:build !windows && !darwin

package opencmd

// openCommand is the desktop-integration opener from xdg-utils.
const openCommand = "xdg-open"

func (r *Resolver) sysOpen(target PathOrURI) (CommandSpec, error) {
	return r.OpenWith(openCommand, target)
}
