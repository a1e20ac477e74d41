package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// MetadataOps handles stat and permission checks
type MetadataOps struct {
	*FilesystemOps
}

// Stat returns the entry for a single path, with the same permission and
// extension rules as a listing. Regular files also get a MIME type.
func (m *MetadataOps) Stat(ctx context.Context, path string) (*types.FileEntry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, types.NewOpError(types.OpGetFileStats, err)
	}

	info, err := m.FS.Stat(abs)
	if err != nil {
		return nil, types.NewOpError(types.OpGetFileStats, err)
	}

	entry := m.buildEntry(abs, filepath.Base(abs), info)
	if info.Mode().IsRegular() && entry.Permissions.Readable {
		entry.MimeType = m.detectMime(abs)
	}
	return &entry, nil
}

// buildEntry turns stat output into a FileEntry. It never fails.
func (m *MetadataOps) buildEntry(path, name string, info os.FileInfo) types.FileEntry {
	isDir := info.IsDir()
	perms := m.checkPermissions(path)

	return types.FileEntry{
		Name:        name,
		Path:        path,
		IsDirectory: isDir,
		Size:        info.Size(),
		Modified:    info.ModTime(),
		Created:     createdTime(path, info),
		Extension:   extensionOf(name, isDir),
		Permissions: &perms,
	}
}

// checkPermissions runs the three access checks independently. A check that
// errors or panics leaves only its own flag false.
func (m *MetadataOps) checkPermissions(path string) types.Permissions {
	return types.Permissions{
		Readable:   m.checkAccess(path, AccessRead),
		Writable:   m.checkAccess(path, AccessWrite),
		Executable: m.checkAccess(path, AccessExecute),
	}
}

func (m *MetadataOps) checkAccess(path string, mode AccessMode) (granted bool) {
	defer func() {
		if r := recover(); r != nil {
			m.Logger.Debug("Permission check panicked",
				zap.String("path", path),
				zap.Uint32("mode", uint32(mode)),
				zap.Any("panic", r),
			)
			granted = false
		}
	}()
	return m.AccessChecker.Access(path, mode) == nil
}

func (m *MetadataOps) detectMime(path string) string {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		m.Logger.Debug("MIME detection failed", zap.String("path", path), zap.Error(err))
		return ""
	}
	return mt.String()
}

// extensionOf returns the lowercase extension including the dot, or nil for
// directories and names without one
func extensionOf(name string, isDir bool) *string {
	if isDir {
		return nil
	}
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		// ".bashrc" has no extension, only a leading dot
		return nil
	}
	lower := strings.ToLower(ext)
	return &lower
}
