//go:build windows

package opencmd

// openCommand is the Windows command shell; its start built-in hands the
// target to the default handler without waiting.
const openCommand = "cmd"

// sysOpen passes the target as a URI rather than a display string: start
// behaves more predictably with URI-shaped arguments than with raw paths,
// whose leading slashes and drive letters can be read as CLI options.
func (r *Resolver) sysOpen(target PathOrURI) (CommandSpec, error) {
	if err := r.ensure(openCommand); err != nil {
		return CommandSpec{}, err
	}
	u, err := target.URI()
	if err != nil {
		return CommandSpec{}, err
	}
	r.debug("resolved open command", "exe", openCommand, "target", u.String())
	return CommandSpec{Program: openCommand, Args: []string{"/c", "start", u.String()}}, nil
}
