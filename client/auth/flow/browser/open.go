// Package browser starts the platform browser for a URL.
package browser

import (
	"os/exec"
	"runtime"
)

// Open returns an unstarted command that opens URL in the default browser.
func Open(URL string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", URL)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", URL)
	default:
		return exec.Command("xdg-open", URL)
	}
}
