//go:build !windows

package prompt

import "runtime"

func platformShell(func(string) string) string {
	// zsh has been the login shell on macOS since Catalina.
	if runtime.GOOS == "darwin" {
		return "zsh"
	}
	return "bash"
}
