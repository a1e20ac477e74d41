package filesystem

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// commandRunner starts a command without waiting for the launched program
type commandRunner func(name string, args ...string) error

// startDetached starts the command and reaps it in the background
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// ShellLauncher opens paths with the desktop's own tools
type ShellLauncher struct {
	goos string
	run  commandRunner
}

// NewShellLauncher returns the launcher for goos
func NewShellLauncher(goos string) *ShellLauncher {
	return &ShellLauncher{goos: goos, run: startDetached}
}

// Open hands path to the default application for its type
func (l *ShellLauncher) Open(path string) error {
	switch l.goos {
	case "darwin":
		return l.run("open", path)
	case "windows":
		return l.run("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return l.run("xdg-open", path)
	}
}

// Reveal shows path selected in the file manager. On freedesktop systems
// without a FileManager1 service the parent directory is opened instead.
func (l *ShellLauncher) Reveal(path string) error {
	switch l.goos {
	case "darwin":
		return l.run("open", "-R", path)
	case "windows":
		return l.run("explorer", "/select,"+path)
	default:
		uri := fmt.Sprintf("array:string:file://%s", filepath.ToSlash(path))
		err := l.run("dbus-send", "--session", "--print-reply",
			"--dest=org.freedesktop.FileManager1",
			"/org/freedesktop/FileManager1",
			"org.freedesktop.FileManager1.ShowItems",
			uri, "string:")
		if err == nil {
			return nil
		}
		return l.run("xdg-open", filepath.Dir(path))
	}
}
