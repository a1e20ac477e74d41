package filesystem

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// TestOpenWithDefaultApp tests delegation to the launcher
func TestOpenWithDefaultApp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "doc")

	launcher := &fakeLauncher{}
	shell := &ShellOps{FilesystemOps: newTestOps(t, WithLauncher(launcher))}

	result := shell.OpenWithDefaultApp(context.Background(), path)
	assert.True(t, result.Success)
	assert.Equal(t, []string{path}, launcher.opened)

	result = shell.RevealInFileManager(context.Background(), path)
	assert.True(t, result.Success)
	assert.Equal(t, []string{path}, launcher.revealed)
}

// TestShellFailures tests the open and reveal error prefixes
func TestShellFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	launcher := &fakeLauncher{}
	shell := &ShellOps{FilesystemOps: newTestOps(t, WithLauncher(launcher))}
	ctx := context.Background()

	result := shell.OpenWithDefaultApp(ctx, missing)
	assert.True(t, strings.HasPrefix(result.Message(), "Failed to open file: "))
	result = shell.RevealInFileManager(ctx, missing)
	assert.True(t, strings.HasPrefix(result.Message(), "Failed to show in folder: "))
	assert.Empty(t, launcher.opened)

	existing := filepath.Join(t.TempDir(), "f")
	writeFile(t, existing, "f")
	launcher.err = errors.New("no handler")
	result = shell.OpenWithDefaultApp(ctx, existing)
	assert.Equal(t, "Failed to open file: no handler", result.Message())
}

type panicLauncher struct{}

func (panicLauncher) Open(string) error   { panic("boom") }
func (panicLauncher) Reveal(string) error { panic("boom") }

// TestLauncherPanicIsCaptured tests that a crashing launcher becomes a failure result
func TestLauncherPanicIsCaptured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	writeFile(t, path, "f")
	shell := &ShellOps{FilesystemOps: newTestOps(t, WithLauncher(panicLauncher{}))}

	result := shell.RevealInFileManager(context.Background(), path)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message(), "boom")
}

// TestWellKnownDirectory tests resolution through the resolver
func TestWellKnownDirectory(t *testing.T) {
	home := t.TempDir()
	shell := &ShellOps{FilesystemOps: newTestOps(t, WithResolver(staticResolver(home)))}

	dir, err := shell.WellKnownDirectory(context.Background(), types.WellKnownDownloads)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Downloads"), dir)
}

// TestShellLauncherCommands tests the commands chosen per platform
func TestShellLauncherCommands(t *testing.T) {
	type call struct {
		name string
		args []string
	}

	cases := []struct {
		goos   string
		open   call
		reveal call
	}{
		{"darwin", call{"open", []string{"/x/f"}}, call{"open", []string{"-R", "/x/f"}}},
		{"windows", call{"rundll32", []string{"url.dll,FileProtocolHandler", "/x/f"}}, call{"explorer", []string{"/select,/x/f"}}},
	}

	for _, tc := range cases {
		t.Run(tc.goos, func(t *testing.T) {
			var got []call
			l := NewShellLauncher(tc.goos)
			l.run = func(name string, args ...string) error {
				got = append(got, call{name, args})
				return nil
			}

			require.NoError(t, l.Open("/x/f"))
			require.NoError(t, l.Reveal("/x/f"))
			assert.Equal(t, []call{tc.open, tc.reveal}, got)
		})
	}
}

// TestShellLauncherRevealFallback tests that xdg-open of the parent is used
// when the file manager service is missing
func TestShellLauncherRevealFallback(t *testing.T) {
	var got []string
	l := NewShellLauncher("linux")
	l.run = func(name string, args ...string) error {
		got = append(got, name+" "+strings.Join(args, " "))
		if name == "dbus-send" {
			return errors.New("not found")
		}
		return nil
	}

	require.NoError(t, l.Reveal("/x/f"))
	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0], "dbus-send"))
	assert.Equal(t, "xdg-open /x", got[1])
}
