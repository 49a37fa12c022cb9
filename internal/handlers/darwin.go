package handlers

// DarwinHandlers returns the macOS openers. open ships with the OS.
func DarwinHandlers() []Handler {
	return []Handler{
		{
			Name:    "open",
			Program: "open",
			Source:  "platform default",
		},
	}
}
