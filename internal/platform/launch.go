package platform

import (
	"fmt"
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
	OpenCommand     = "open"
	XDGOpenCommand  = "xdg-open"
	GtkLaunchCmd    = "gtk-launch"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AndroidAMCmd    = "am"
	WindowsCmdFlag  = "/c"
	DesktopFileExt  = ".desktop"
	StoreSearchBase = "https://play.google.com/store/search"
)

// Runner starts an external command. It is a variable so tests can observe
// launches without spawning processes.
var Runner = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// LaunchCommand returns the command that opens target on goos
func LaunchCommand(goos, target string) (string, []string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", nil, fmt.Errorf("launch target is empty")
	}

	switch goos {
	case OSDarwin:
		if strings.HasSuffix(target, ".app") {
			return OpenCommand, []string{"-a", target}, nil
		}
		return OpenCommand, []string{target}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", target}, nil
	case OSLinux:
		if strings.HasSuffix(target, DesktopFileExt) {
			return GtkLaunchCmd, []string{strings.TrimSuffix(target, DesktopFileExt)}, nil
		}
		return XDGOpenCommand, []string{target}, nil
	case OSAndroid:
		if strings.Contains(target, "://") {
			return AndroidAMCmd, []string{"start", "-a", "android.intent.action.VIEW", "-d", target}, nil
		}
		// package/activity component
		return AndroidAMCmd, []string{"start", "-n", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// Launch opens target with the platform opener
func Launch(target string) error {
	name, args, err := LaunchCommand(runtime.GOOS, target)
	if err != nil {
		return err
	}
	if err := Runner(name, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", target, err)
	}
	return nil
}

// StoreSearchURL returns the store search page for query
func StoreSearchURL(query string) string {
	v := url.Values{}
	v.Set("q", strings.TrimSpace(query))
	v.Set("c", "apps")
	return StoreSearchBase + "?" + v.Encode()
}

// OpenStoreSearch opens the store search page for query
func OpenStoreSearch(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is empty")
	}
	return Launch(StoreSearchURL(query))
}
