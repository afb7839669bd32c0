//go:build windows

package prompt

func platformShell(getenv func(string) string) string {
	if getenv("PSModulePath") != "" {
		return "powershell"
	}
	return "cmd"
}
