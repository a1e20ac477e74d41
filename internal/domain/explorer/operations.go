package explorer

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/paths"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/utils"
)

// Headers of aggregated multi-item failures
const (
	deleteFailedHeader = "Failed to delete some items:"
	copyFailedHeader   = "Failed to copy some items:"
)

// resultFailure turns a mutation outcome into a failure message, or ""
func resultFailure(op string, res types.OperationResult, err error) string {
	switch {
	case err != nil:
		return failure(op, err)
	case !res.Success:
		if msg := res.Message(); msg != "" {
			return msg
		}
		return "Failed to " + op
	}
	return ""
}

// settle refreshes the listing so it matches the disk, then reports msg.
// A failure of the action itself wins over a failed refresh.
func (e *Engine) settle(ctx context.Context, msg string) {
	refreshed := ""
	if current := e.State().CurrentPath; current != "" {
		refreshed = e.load(ctx, current, false)
	}
	if msg == "" {
		msg = refreshed
	}
	e.setError(msg)
}

// CreateFolder creates name in the current directory
func (e *Engine) CreateFolder(ctx context.Context, name string) {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	defer e.begin()()

	res, err := e.api.CreateFolder(ctx, e.State().CurrentPath, name)
	e.settle(ctx, resultFailure(types.OpCreateFolder, res, err))
}

// Rename gives item the base name newName in the same directory
func (e *Engine) Rename(ctx context.Context, item types.FileEntry, newName string) {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	defer e.begin()()

	if err := utils.ValidateEntryName(newName); err != nil {
		e.settle(ctx, failure(types.OpRenameItem, err))
		return
	}

	res, err := e.api.RenameItem(ctx, item.Path, paths.ReplaceBase(item.Path, newName))
	e.settle(ctx, resultFailure(types.OpRenameItem, res, err))
}

// DeleteSelected deletes every selected entry
func (e *Engine) DeleteSelected(ctx context.Context) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	selected := e.State().Selected
	if len(selected) == 0 {
		return
	}
	defer e.begin()()

	lines := e.batch(ctx, selected, types.OpDeleteItem, func(ctx context.Context, item types.FileEntry) (types.OperationResult, error) {
		return e.api.DeleteItem(ctx, item.Path)
	})
	e.settle(ctx, aggregate(deleteFailedHeader, lines))
}

// CopySelected copies every selected entry into destination, keeping names
func (e *Engine) CopySelected(ctx context.Context, destination string) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	selected := e.State().Selected
	if len(selected) == 0 {
		return
	}
	defer e.begin()()

	lines := e.batch(ctx, selected, types.OpCopyItem, func(ctx context.Context, item types.FileEntry) (types.OperationResult, error) {
		return e.api.CopyItem(ctx, item.Path, filepath.Join(destination, item.Name))
	})
	e.settle(ctx, aggregate(copyFailedHeader, lines))
}

// batch runs call for every item, bounded by the worker limit. The result
// holds one "<name>: <error>" line per failed item in selection order.
func (e *Engine) batch(ctx context.Context, items []types.FileEntry, op string, call func(context.Context, types.FileEntry) (types.OperationResult, error)) []string {
	lines := make([]string, len(items))

	var g errgroup.Group
	g.SetLimit(max(e.workers, 1))
	for i, item := range items {
		g.Go(func() error {
			res, err := call(ctx, item)
			if msg := resultFailure(op, res, err); msg != "" {
				lines[i] = item.Name + ": " + msg
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := lines[:0]
	for _, line := range lines {
		if line != "" {
			failed = append(failed, line)
		}
	}
	if len(failed) > 0 {
		e.logger.Warn("Batch finished with failures",
			zap.String("op", op),
			zap.Int("items", len(items)),
			zap.Int("failed", len(failed)),
		)
	}
	return failed
}

func aggregate(header string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return header + "\n" + strings.Join(lines, "\n")
}

// OpenItem enters a directory or opens a file with its default application
func (e *Engine) OpenItem(ctx context.Context, item types.FileEntry) {
	if item.IsDirectory {
		e.NavigateTo(ctx, item.Path)
		return
	}

	e.opMu.Lock()
	defer e.opMu.Unlock()

	res, err := e.api.OpenFile(ctx, item.Path)
	if msg := resultFailure(types.OpOpenFile, res, err); msg != "" {
		e.setError(msg)
	}
}

// ShowInFolder reveals item in the platform file manager
func (e *Engine) ShowInFolder(ctx context.Context, item types.FileEntry) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	res, err := e.api.ShowInFolder(ctx, item.Path)
	if msg := resultFailure(types.OpShowInFolder, res, err); msg != "" {
		e.setError(msg)
	}
}
