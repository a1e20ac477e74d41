package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/paths"
)

// spyFS records mutating calls and can fail Stat for chosen paths
type spyFS struct {
	OSFileSystem
	mu       sync.Mutex
	calls    []string
	failStat map[string]error
}

func newSpyFS() *spyFS {
	return &spyFS{failStat: make(map[string]error)}
}

func (s *spyFS) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *spyFS) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *spyFS) Stat(name string) (os.FileInfo, error) {
	if err, ok := s.failStat[filepath.Base(name)]; ok {
		return nil, err
	}
	return s.OSFileSystem.Stat(name)
}

func (s *spyFS) Remove(name string) error {
	s.record("remove " + filepath.Base(name))
	return s.OSFileSystem.Remove(name)
}

func (s *spyFS) RemoveAll(path string) error {
	s.record("removeall " + filepath.Base(path))
	return s.OSFileSystem.RemoveAll(path)
}

func (s *spyFS) MkdirAll(path string, perm os.FileMode) error {
	s.record("mkdir " + path)
	return s.OSFileSystem.MkdirAll(path, perm)
}

func (s *spyFS) Chmod(name string, mode os.FileMode) error {
	s.record(fmt.Sprintf("chmod %s %o", name, mode))
	return s.OSFileSystem.Chmod(name, mode)
}

func (s *spyFS) CopyFile(src, dst string, perm os.FileMode) error {
	s.record("copy " + dst)
	return s.OSFileSystem.CopyFile(src, dst, perm)
}

// fakeChecker grants every mode unless told otherwise
type fakeChecker struct {
	deny  map[AccessMode]bool
	panic map[AccessMode]bool
}

func (f fakeChecker) Access(path string, mode AccessMode) error {
	if f.panic[mode] {
		panic("access check exploded")
	}
	if f.deny[mode] {
		return errors.New("permission denied")
	}
	return nil
}

// fakeLauncher records the paths it was asked to open or reveal
type fakeLauncher struct {
	opened   []string
	revealed []string
	err      error
}

func (f *fakeLauncher) Open(path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

func (f *fakeLauncher) Reveal(path string) error {
	f.revealed = append(f.revealed, path)
	return f.err
}

func staticResolver(home string) *paths.Resolver {
	return &paths.Resolver{
		HomeDir:  func() (string, error) { return home, nil },
		Getenv:   func(string) string { return "" },
		ReadFile: func(string) ([]byte, error) { return nil, os.ErrNotExist },
		GOOS:     "linux",
	}
}

func newTestOps(t *testing.T, opts ...Option) *FilesystemOps {
	t.Helper()
	base := []Option{
		WithAccessChecker(fakeChecker{}),
		WithLauncher(&fakeLauncher{}),
		WithResolver(staticResolver(t.TempDir())),
	}
	return NewFilesystemOps(zap.NewNop(), append(base, opts...)...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}
