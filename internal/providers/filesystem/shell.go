package filesystem

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// ShellOps handles desktop integration and well-known directories
type ShellOps struct {
	*FilesystemOps
}

// OpenWithDefaultApp opens path with the application registered for it
func (s *ShellOps) OpenWithDefaultApp(ctx context.Context, path string) types.OperationResult {
	if _, err := s.FS.Stat(path); err != nil {
		return types.FailureFor(types.OpOpenFile, err)
	}
	if err := s.launch(s.Launcher.Open, path); err != nil {
		return types.FailureFor(types.OpOpenFile, err)
	}

	s.Logger.Debug("Opened with default app", zap.String("path", path))
	return types.Success()
}

// RevealInFileManager shows path selected in the platform file manager
func (s *ShellOps) RevealInFileManager(ctx context.Context, path string) types.OperationResult {
	if _, err := s.FS.Stat(path); err != nil {
		return types.FailureFor(types.OpShowInFolder, err)
	}
	if err := s.launch(s.Launcher.Reveal, path); err != nil {
		return types.FailureFor(types.OpShowInFolder, err)
	}

	s.Logger.Debug("Revealed in file manager", zap.String("path", path))
	return types.Success()
}

// WellKnownDirectory resolves home, desktop, documents or downloads
func (s *ShellOps) WellKnownDirectory(ctx context.Context, kind types.WellKnown) (string, error) {
	return s.Dirs.Resolve(kind)
}

// launch captures launcher panics as errors
func (s *ShellOps) launch(fn func(string) error, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("launcher panic: %v", r)
		}
	}()
	return fn(path)
}
