package filesystem

import (
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/paths"
)

// FileSystem is the set of OS primitives the explorer needs
type FileSystem interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
	Mkdir(name string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Chmod(name string, mode os.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
	CopyFile(src, dst string, perm os.FileMode) error
	Readlink(name string) (string, error)
	Symlink(oldname, newname string) error
}

// AccessMode selects one permission check
type AccessMode uint32

const (
	AccessRead AccessMode = 1 << iota
	AccessWrite
	AccessExecute
)

// AccessChecker answers whether the current process may access a path.
// A nil error means granted.
type AccessChecker interface {
	Access(path string, mode AccessMode) error
}

// Launcher hands paths to the desktop shell
type Launcher interface {
	Open(path string) error
	Reveal(path string) error
}

// SkipHook is told about children dropped from a listing
type SkipHook func(dir, name string, err error)

// FilesystemOps holds the dependencies shared by all operation groups
type FilesystemOps struct {
	FS            FileSystem
	AccessChecker AccessChecker
	Launcher      Launcher
	Dirs          *paths.Resolver
	Logger        *zap.Logger
	OnSkip        SkipHook
	// Workers bounds how many children of one listing are stat'd at once
	Workers int
}

// Option configures FilesystemOps
type Option func(*FilesystemOps)

// WithFileSystem replaces the OS primitives
func WithFileSystem(fs FileSystem) Option {
	return func(o *FilesystemOps) { o.FS = fs }
}

// WithAccessChecker replaces the permission checker
func WithAccessChecker(p AccessChecker) Option {
	return func(o *FilesystemOps) { o.AccessChecker = p }
}

// WithLauncher replaces the desktop shell integration
func WithLauncher(l Launcher) Option {
	return func(o *FilesystemOps) { o.Launcher = l }
}

// WithResolver replaces the well-known directory resolver
func WithResolver(r *paths.Resolver) Option {
	return func(o *FilesystemOps) { o.Dirs = r }
}

// WithSkipHook registers a diagnostics hook for dropped listing entries
func WithSkipHook(h SkipHook) Option {
	return func(o *FilesystemOps) { o.OnSkip = h }
}

// WithWorkers bounds listing concurrency
func WithWorkers(n int) Option {
	return func(o *FilesystemOps) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// NewFilesystemOps creates the shared dependencies backed by the real OS
func NewFilesystemOps(logger *zap.Logger, opts ...Option) *FilesystemOps {
	if logger == nil {
		logger = zap.NewNop()
	}

	ops := &FilesystemOps{
		FS:            OSFileSystem{},
		AccessChecker: accessChecker{},
		Launcher:      NewShellLauncher(runtime.GOOS),
		Dirs:          paths.NewResolver(),
		Logger:        logger.Named("filesystem"),
		Workers:       runtime.NumCPU() * 2,
	}
	for _, opt := range opts {
		opt(ops)
	}
	return ops
}

func (o *FilesystemOps) skipped(dir, name string, err error) {
	o.Logger.Warn("Skipping inaccessible entry",
		zap.String("dir", dir),
		zap.String("name", name),
		zap.Error(err),
	)
	if o.OnSkip != nil {
		o.OnSkip(dir, name, err)
	}
}
