package filesystem

import (
	"fmt"
	"io"
	"os"
)

// OSFileSystem implements FileSystem with the os package
type OSFileSystem struct{}

func (OSFileSystem) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }
func (OSFileSystem) Stat(name string) (os.FileInfo, error)      { return os.Stat(name) }
func (OSFileSystem) Lstat(name string) (os.FileInfo, error)     { return os.Lstat(name) }
func (OSFileSystem) Mkdir(name string, perm os.FileMode) error  { return os.Mkdir(name, perm) }
func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
func (OSFileSystem) Chmod(name string, mode os.FileMode) error { return os.Chmod(name, mode) }
func (OSFileSystem) Remove(name string) error                  { return os.Remove(name) }
func (OSFileSystem) RemoveAll(path string) error               { return os.RemoveAll(path) }
func (OSFileSystem) Rename(oldpath, newpath string) error      { return os.Rename(oldpath, newpath) }
func (OSFileSystem) Readlink(name string) (string, error)      { return os.Readlink(name) }
func (OSFileSystem) Symlink(oldname, newname string) error     { return os.Symlink(oldname, newname) }

// CopyFile copies the bytes of src to dst, replacing dst if it exists
func (OSFileSystem) CopyFile(src, dst string, perm os.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", dst, cerr)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}
