package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

var (
	// ErrCopyIntoSelf is returned when a directory would be copied into its own subtree
	ErrCopyIntoSelf = errors.New("cannot copy a directory into itself")
	// ErrSameFile is returned when source and destination are one file,
	// including through a link
	ErrSameFile = errors.New("source and destination are the same file")
)

// dirBuildPerm keeps mirrored directories writable until their files are in
const dirBuildPerm fs.FileMode = 0o700

// OperationsOps handles delete, rename and copy
type OperationsOps struct {
	*FilesystemOps
}

// Delete removes a file, or a directory and everything below it. Descendants
// that vanish during the removal are not an error.
func (o *OperationsOps) Delete(ctx context.Context, path string) types.OperationResult {
	info, err := o.FS.Stat(path)
	if err != nil {
		return types.FailureFor(types.OpDeleteItem, err)
	}

	if info.IsDir() {
		err = o.FS.RemoveAll(path)
	} else {
		err = o.FS.Remove(path)
	}
	if err != nil {
		return types.FailureFor(types.OpDeleteItem, err)
	}

	o.Logger.Info("Deleted item", zap.String("path", path), zap.Bool("dir", info.IsDir()))
	return types.Success()
}

// Rename moves oldPath to newPath in one OS call
func (o *OperationsOps) Rename(ctx context.Context, oldPath, newPath string) types.OperationResult {
	if err := o.FS.Rename(oldPath, newPath); err != nil {
		return types.FailureFor(types.OpRenameItem, err)
	}

	o.Logger.Info("Renamed item", zap.String("from", oldPath), zap.String("to", newPath))
	return types.Success()
}

// Copy copies a file, or mirrors a whole directory tree including empty
// directories. A failed tree copy is not rolled back.
func (o *OperationsOps) Copy(ctx context.Context, source, destination string) types.OperationResult {
	info, err := o.FS.Stat(source)
	if err != nil {
		return types.FailureFor(types.OpCopyItem, err)
	}
	// opening the destination for writing would truncate the source
	if dstInfo, err := o.FS.Stat(destination); err == nil && os.SameFile(info, dstInfo) {
		return types.FailureFor(types.OpCopyItem, fmt.Errorf("%w: %s", ErrSameFile, destination))
	}

	if info.IsDir() {
		err = o.copyTree(source, destination, info.Mode().Perm())
	} else {
		err = o.FS.CopyFile(source, destination, info.Mode().Perm())
	}
	if err != nil {
		return types.FailureFor(types.OpCopyItem, err)
	}

	o.Logger.Info("Copied item", zap.String("from", source), zap.String("to", destination))
	return types.Success()
}

type treeNode struct {
	rel  string
	mode fs.FileMode
	link bool
}

// copyTree enumerates source, creates every directory of the mirror and only
// then copies files and links into it. Directories get their real modes last,
// deepest first, so read-only source directories still receive their files.
func (o *OperationsOps) copyTree(source, destination string, rootPerm fs.FileMode) error {
	src, err := filepath.Abs(source)
	if err != nil {
		return err
	}
	dst, err := filepath.Abs(destination)
	if err != nil {
		return err
	}
	if dst == src || strings.HasPrefix(dst, src+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrCopyIntoSelf, dst)
	}

	dirs, leaves, err := o.scanTree(src)
	if err != nil {
		return err
	}

	if err := o.FS.MkdirAll(dst, dirBuildPerm); err != nil {
		return err
	}
	// parents sort before their children
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].rel < dirs[j].rel })
	for _, d := range dirs {
		if err := o.FS.MkdirAll(filepath.Join(dst, d.rel), dirBuildPerm); err != nil {
			return err
		}
	}

	for _, leaf := range leaves {
		from := filepath.Join(src, leaf.rel)
		to := filepath.Join(dst, leaf.rel)
		if leaf.link {
			target, err := o.FS.Readlink(from)
			if err != nil {
				return err
			}
			if err := o.FS.Symlink(target, to); err != nil {
				return err
			}
			continue
		}
		if err := o.FS.CopyFile(from, to, leaf.mode.Perm()); err != nil {
			return err
		}
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		if err := o.FS.Chmod(filepath.Join(dst, dirs[i].rel), dirs[i].mode.Perm()); err != nil {
			return err
		}
	}
	return o.FS.Chmod(dst, rootPerm)
}

// scanTree walks src concurrently and splits it into directories and leaves
func (o *OperationsOps) scanTree(src string) (dirs, leaves []treeNode, err error) {
	var mu sync.Mutex
	conf := fastwalk.Config{Follow: false}

	err = fastwalk.Walk(&conf, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		node := treeNode{rel: rel}
		switch {
		case d.Type()&fs.ModeSymlink != 0:
			node.link = true
		default:
			info, err := d.Info()
			if err != nil {
				return err
			}
			node.mode = info.Mode()
		}

		mu.Lock()
		defer mu.Unlock()
		if d.IsDir() {
			dirs = append(dirs, node)
		} else {
			leaves = append(leaves, node)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(leaves, func(i, j int) bool { return leaves[i].rel < leaves[j].rel })
	return dirs, leaves, nil
}
