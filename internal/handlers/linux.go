package handlers

// LinuxHandlers returns the desktop-integration openers used on Linux and
// other Unix-y systems. xdg-open from xdg-utils is preferred; the Debian
// alternatives are listed as fallbacks for minimal installs.
func LinuxHandlers() []Handler {
	return []Handler{
		{
			Name:    "xdg-open",
			Program: "xdg-open",
			Source:  "platform default",
		},
		{
			Name:    "x-www-browser",
			Program: "x-www-browser",
			Source:  "fallback",
		},
		{
			Name:    "www-browser",
			Program: "www-browser",
			Source:  "fallback",
		},
	}
}
