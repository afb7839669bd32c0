package prompt

import (
	"os"
	"runtime"
	"strings"
)

// SystemContext describes the machine the command is generated for.
type SystemContext struct {
	OS    string
	Arch  string
	Shell string
}

// GatherContext collects the running platform and the detected shell.
func GatherContext(shells ShellDetector) SystemContext {
	return SystemContext{
		OS:    runtime.GOOS,
		Arch:  runtime.GOARCH,
		Shell: shells.Detect(),
	}
}

// OSName is a human readable name for ctx.OS.
func (ctx SystemContext) OSName() string {
	switch ctx.OS {
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	case "windows":
		return "Windows"
	case "":
		return "an unknown OS"
	default:
		return ctx.OS
	}
}

func GetOSHints(goos string) string {
	switch goos {
	case "darwin":
		return "macOS: use BSD-style flags (e.g., ls -G for colors)"
	case "linux":
		return "Linux: use GNU-style flags (e.g., ls --color for colors)"
	case "windows":
		return "Windows: prefer PowerShell cmdlets when appropriate"
	default:
		return ""
	}
}

// ShellDetector reports the name of the user's interactive shell.
type ShellDetector interface {
	Detect() string
}

// EnvShellDetector reads $SHELL and falls back to a per-platform default.
type EnvShellDetector struct {
	Getenv func(string) string
}

func NewShellDetector() EnvShellDetector {
	return EnvShellDetector{Getenv: os.Getenv}
}

func (d EnvShellDetector) getenv(key string) string {
	if d.Getenv == nil {
		return os.Getenv(key)
	}
	return d.Getenv(key)
}

func (d EnvShellDetector) Detect() string {
	if path := d.getenv("SHELL"); path != "" {
		name := path[strings.LastIndexAny(path, `/\`)+1:]
		name = strings.TrimSuffix(name, ".exe")
		if name != "" {
			return name
		}
	}
	return platformShell(d.getenv)
}
