package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

func testResolver(goos string, env map[string]string, files map[string]string) *Resolver {
	return &Resolver{
		HomeDir: func() (string, error) { return "/home/ada", nil },
		Getenv:  func(k string) string { return env[k] },
		ReadFile: func(p string) ([]byte, error) {
			if data, ok := files[p]; ok {
				return []byte(data), nil
			}
			return nil, os.ErrNotExist
		},
		GOOS: goos,
	}
}

func TestResolveHome(t *testing.T) {
	r := testResolver("linux", nil, nil)

	dir, err := r.Resolve(types.WellKnownHome)
	require.NoError(t, err)
	assert.Equal(t, "/home/ada", dir)
}

func TestResolveFallsBackToConventionalFolders(t *testing.T) {
	r := testResolver("darwin", nil, nil)

	tests := map[types.WellKnown]string{
		types.WellKnownDesktop:   "/home/ada/Desktop",
		types.WellKnownDocuments: "/home/ada/Documents",
		types.WellKnownDownloads: "/home/ada/Downloads",
	}
	for kind, want := range tests {
		t.Run(string(kind), func(t *testing.T) {
			dir, err := r.Resolve(kind)
			require.NoError(t, err)
			assert.Equal(t, want, dir)
		})
	}
}

func TestResolveReadsUserDirs(t *testing.T) {
	userDirs := `# generated by xdg-user-dirs-update
XDG_DESKTOP_DIR="$HOME/Bureau"
XDG_DOWNLOAD_DIR="$HOME/Téléchargements"
XDG_DOCUMENTS_DIR="/data/docs"
`
	r := testResolver("linux", nil, map[string]string{
		"/home/ada/.config/user-dirs.dirs": userDirs,
	})

	desktop, err := r.Resolve(types.WellKnownDesktop)
	require.NoError(t, err)
	assert.Equal(t, "/home/ada/Bureau", desktop)

	downloads, err := r.Resolve(types.WellKnownDownloads)
	require.NoError(t, err)
	assert.Equal(t, "/home/ada/Téléchargements", downloads)

	docs, err := r.Resolve(types.WellKnownDocuments)
	require.NoError(t, err)
	assert.Equal(t, "/data/docs", docs)
}

func TestResolveEnvironmentWins(t *testing.T) {
	r := testResolver("linux",
		map[string]string{"XDG_DESKTOP_DIR": "$HOME/Schreibtisch", "XDG_CONFIG_HOME": "/cfg"},
		map[string]string{"/cfg/user-dirs.dirs": `XDG_DESKTOP_DIR="$HOME/Bureau"`},
	)

	dir, err := r.Resolve(types.WellKnownDesktop)
	require.NoError(t, err)
	assert.Equal(t, "/home/ada/Schreibtisch", dir)
}

func TestResolveErrors(t *testing.T) {
	r := testResolver("linux", nil, nil)
	_, err := r.Resolve(types.WellKnown("music"))
	assert.Error(t, err)

	r.HomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }
	_, err = r.Resolve(types.WellKnownHome)
	assert.ErrorContains(t, err, "$HOME is not defined")
}

func TestIsRootAndParent(t *testing.T) {
	assert.True(t, IsRoot("/"))
	assert.False(t, IsRoot("/test/path"))
	assert.False(t, IsRoot(""))

	parent, ok := Parent("/test/path")
	assert.True(t, ok)
	assert.Equal(t, "/test", parent)

	_, ok = Parent("/")
	assert.False(t, ok)
}

func TestReplaceBase(t *testing.T) {
	// the old name also appears higher up in the path
	got := ReplaceBase("/work/report/report", "summary")
	assert.Equal(t, filepath.Join("/work/report", "summary"), got)
}
