package paths

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// Resolver resolves well-known directories. The function fields exist so
// tests can replace the environment.
type Resolver struct {
	HomeDir  func() (string, error)
	Getenv   func(string) string
	ReadFile func(string) ([]byte, error)
	GOOS     string
}

// NewResolver returns a resolver backed by the real environment
func NewResolver() *Resolver {
	return &Resolver{
		HomeDir:  os.UserHomeDir,
		Getenv:   os.Getenv,
		ReadFile: os.ReadFile,
		GOOS:     runtime.GOOS,
	}
}

// xdg key and fallback folder name for each kind
var wellKnown = map[types.WellKnown]struct {
	xdgKey   string
	fallback string
}{
	types.WellKnownDesktop:   {"XDG_DESKTOP_DIR", "Desktop"},
	types.WellKnownDocuments: {"XDG_DOCUMENTS_DIR", "Documents"},
	types.WellKnownDownloads: {"XDG_DOWNLOAD_DIR", "Downloads"},
}

// Resolve returns the absolute path for kind
func (r *Resolver) Resolve(kind types.WellKnown) (string, error) {
	home, err := r.HomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	home = filepath.Clean(home)

	if kind == types.WellKnownHome {
		return home, nil
	}

	entry, ok := wellKnown[kind]
	if !ok {
		return "", fmt.Errorf("unknown directory kind %q", kind)
	}

	if r.usesXDG() {
		if dir := r.xdgDir(entry.xdgKey, home); dir != "" {
			return dir, nil
		}
	}

	return filepath.Join(home, entry.fallback), nil
}

func (r *Resolver) usesXDG() bool {
	switch r.GOOS {
	case "windows", "darwin", "ios", "plan9", "js":
		return false
	}
	return true
}

func (r *Resolver) xdgDir(key, home string) string {
	if v := r.Getenv(key); v != "" {
		return expandHome(v, home)
	}

	configHome := r.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	data, err := r.ReadFile(filepath.Join(configHome, "user-dirs.dirs"))
	if err != nil {
		return ""
	}

	return parseUserDirs(data, home)[key]
}

// parseUserDirs reads the shell-style assignments of user-dirs.dirs
func parseUserDirs(data []byte, home string) map[string]string {
	dirs := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if value == "" {
			continue
		}
		dirs[strings.TrimSpace(key)] = expandHome(value, home)
	}
	return dirs
}

func expandHome(value, home string) string {
	switch {
	case value == "$HOME":
		return home
	case strings.HasPrefix(value, "$HOME/"):
		return filepath.Join(home, strings.TrimPrefix(value, "$HOME/"))
	case strings.HasPrefix(value, "~/"):
		return filepath.Join(home, strings.TrimPrefix(value, "~/"))
	}
	return filepath.Clean(value)
}

// IsRoot reports whether p is a filesystem root, i.e. its own parent
func IsRoot(p string) bool {
	if p == "" {
		return false
	}
	clean := filepath.Clean(p)
	return filepath.Dir(clean) == clean
}

// Parent returns the direct parent of p and false when p is a root
func Parent(p string) (string, bool) {
	clean := filepath.Clean(p)
	parent := filepath.Dir(clean)
	if parent == clean {
		return "", false
	}
	return parent, true
}

// ReplaceBase swaps the last path component of p for name
func ReplaceBase(p, name string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(p)), name)
}
