package platform

import (
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand       = "open"
	XDGOpenCommand    = "xdg-open"
	RundllCommand     = "rundll32"
	RundllURLParam    = "url.dll,FileProtocolHandler"
	AndroidAMCmd      = "am"
	AndroidViewIntent = "android.intent.action.VIEW"
)

// Browser names tried on Linux when xdg-open is missing
var (
	LinuxBrowsers = []string{"sensible-browser", "x-www-browser", "firefox", "chromium", "google-chrome"}
)

// Allowed URL schemes
var (
	AllowedSchemes = []string{"http", "https"}
)

// ValidateURL checks that raw is an absolute http(s) URL and returns it normalized
func ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty url")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	allowed := false
	for _, s := range AllowedSchemes {
		if scheme == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("unsupported url scheme: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url has no host: %s", raw)
	}

	return parsed.String(), nil
}

// OpenURL hands the URL to the system browser without waiting for it
func OpenURL(raw string) error {
	target, err := ValidateURL(raw)
	if err != nil {
		return err
	}

	cmd, err := browserCommand(runtime.GOOS, target)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}

	// Reap the child; exit status is not reported back
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Browser command exited: %v", err)
		}
	}()

	return nil
}

// browserCommand builds the OS-specific command that opens target
func browserCommand(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, target), nil
	case OSWindows:
		return exec.Command(RundllCommand, RundllURLParam, target), nil
	case OSAndroid:
		return exec.Command(AndroidAMCmd, "start", "-a", AndroidViewIntent, "-d", target), nil
	case OSLinux, "freebsd", "openbsd", "netbsd":
		// Try xdg-open first (most common)
		if _, err := exec.LookPath(XDGOpenCommand); err == nil {
			return exec.Command(XDGOpenCommand, target), nil
		}
		for _, browser := range LinuxBrowsers {
			if _, err := exec.LookPath(browser); err == nil {
				return exec.Command(browser, target), nil
			}
		}
		return nil, fmt.Errorf("no suitable browser found")
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
