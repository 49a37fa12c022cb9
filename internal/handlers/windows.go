package handlers

// WindowsHandlers returns the Windows openers. The cmd start built-in is the
// default handler entry point; it receives the target in URI form so paths
// are not mistaken for CLI options.
func WindowsHandlers() []Handler {
	return []Handler{
		{
			Name:    "start",
			Program: "cmd",
			Args:    []string{"/c", "start"},
			UsesURI: true,
			Source:  "platform default",
		},
		{
			Name:    "rundll32",
			Program: "rundll32",
			Args:    []string{"url.dll,FileProtocolHandler"},
			Source:  "fallback",
		},
	}
}
