package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// TestExtensionOf tests the extension rules
func TestExtensionOf(t *testing.T) {
	cases := []struct {
		name  string
		isDir bool
		want  string
		none  bool
	}{
		{name: "photo.JPG", want: ".jpg"},
		{name: "archive.tar.gz", want: ".gz"},
		{name: "file.", want: "."},
		{name: "Makefile", none: true},
		{name: ".bashrc", none: true},
		{name: "folder.app", isDir: true, none: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extensionOf(tc.name, tc.isDir)
			if tc.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

// TestAccessChecksAreIndependent tests that one failing check does not affect the others
func TestAccessChecksAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	writeFile(t, path, "x")

	meta := &MetadataOps{FilesystemOps: newTestOps(t, WithAccessChecker(fakeChecker{
		deny:  map[AccessMode]bool{AccessRead: true},
		panic: map[AccessMode]bool{AccessExecute: true},
	}))}

	perms := meta.checkPermissions(path)
	assert.False(t, perms.Readable)
	assert.True(t, perms.Writable)
	assert.False(t, perms.Executable)
}

// TestStatFile tests stat of a regular file including MIME detection
func TestStatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	writeFile(t, path, "plain text content\n")

	meta := &MetadataOps{FilesystemOps: newTestOps(t)}
	entry, err := meta.Stat(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", entry.Name)
	assert.Equal(t, path, entry.Path)
	assert.False(t, entry.IsDirectory)
	assert.Equal(t, int64(19), entry.Size)
	assert.Equal(t, ".txt", entry.Ext())
	assert.Contains(t, entry.MimeType, "text/plain")
	assert.False(t, entry.Modified.IsZero())
	assert.False(t, entry.Created.IsZero())
}

// TestStatDirectory tests that directories carry no extension or MIME type
func TestStatDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkg.d")
	require.NoError(t, os.Mkdir(path, 0o755))

	meta := &MetadataOps{FilesystemOps: newTestOps(t)}
	entry, err := meta.Stat(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, entry.IsDirectory)
	assert.Nil(t, entry.Extension)
	assert.Empty(t, entry.MimeType)
}

// TestStatMissing tests the get file stats error prefix
func TestStatMissing(t *testing.T) {
	meta := &MetadataOps{FilesystemOps: newTestOps(t)}
	_, err := meta.Stat(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var opErr *types.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, types.OpGetFileStats, opErr.Op)
	assert.Contains(t, err.Error(), "Failed to get file stats: ")
}
