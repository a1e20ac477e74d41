package filesystem

import (
	"context"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/paths"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/utils"
)

// DirectoryOps handles directory listing and folder creation
type DirectoryOps struct {
	*FilesystemOps
}

// List returns the immediate children of path, directories first and then by
// name. Children that cannot be stat'd are left out.
func (d *DirectoryOps) List(ctx context.Context, path string) (*types.DirectoryContents, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, types.NewOpError(types.OpReadDirectory, err)
	}

	children, err := d.FS.ReadDir(abs)
	if err != nil {
		return nil, types.NewOpError(types.OpReadDirectory, err)
	}

	meta := &MetadataOps{FilesystemOps: d.FilesystemOps}
	slots := make([]*types.FileEntry, len(children))

	var g errgroup.Group
	g.SetLimit(max(d.Workers, 1))
	for i, child := range children {
		g.Go(func() error {
			name := child.Name()
			full := filepath.Join(abs, name)

			info, err := d.FS.Stat(full)
			if err != nil {
				d.skipped(abs, name, err)
				return nil
			}

			entry := meta.buildEntry(full, name, info)
			slots[i] = &entry
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	items := make([]types.FileEntry, 0, len(slots))
	for _, e := range slots {
		if e != nil {
			items = append(items, *e)
		}
	}
	SortEntries(items)

	contents := &types.DirectoryContents{Path: abs, Items: items}
	if parent, ok := paths.Parent(abs); ok {
		contents.Parent = &parent
	}

	d.Logger.Debug("Listed directory",
		zap.String("path", abs),
		zap.Int("entries", len(items)),
		zap.Int("skipped", len(children)-len(items)),
	)
	return contents, nil
}

// CreateFolder creates exactly one directory level at parentPath/name.
// Missing parents are an error.
func (d *DirectoryOps) CreateFolder(ctx context.Context, parentPath, name string) types.OperationResult {
	if err := utils.ValidateEntryName(name); err != nil {
		return types.FailureFor(types.OpCreateFolder, err)
	}

	target := filepath.Join(parentPath, name)
	if err := d.FS.Mkdir(target, 0o755); err != nil {
		return types.FailureFor(types.OpCreateFolder, err)
	}

	d.Logger.Info("Created folder", zap.String("path", target))
	return types.Success()
}

// SortEntries orders entries directories first, then by locale-aware,
// case-insensitive name
func SortEntries(items []types.FileEntry) {
	cmp := utils.NewNameComparer()
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsDirectory != b.IsDirectory {
			return a.IsDirectory
		}
		return cmp.Compare(a.Name, b.Name) < 0
	})
}
