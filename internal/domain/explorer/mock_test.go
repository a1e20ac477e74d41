package explorer

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/FileExplorer/internal/bridge"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

type mockAPI struct {
	mock.Mock
}

var _ bridge.API = (*mockAPI)(nil)

func (m *mockAPI) ReadDirectory(ctx context.Context, path string) (*types.DirectoryContents, error) {
	args := m.Called(ctx, path)
	contents, _ := args.Get(0).(*types.DirectoryContents)
	return contents, args.Error(1)
}

func (m *mockAPI) GetFileStats(ctx context.Context, path string) (*types.FileEntry, error) {
	args := m.Called(ctx, path)
	entry, _ := args.Get(0).(*types.FileEntry)
	return entry, args.Error(1)
}

func (m *mockAPI) result(args mock.Arguments) (types.OperationResult, error) {
	res, _ := args.Get(0).(types.OperationResult)
	return res, args.Error(1)
}

func (m *mockAPI) CreateFolder(ctx context.Context, parentPath, name string) (types.OperationResult, error) {
	return m.result(m.Called(ctx, parentPath, name))
}

func (m *mockAPI) DeleteItem(ctx context.Context, path string) (types.OperationResult, error) {
	return m.result(m.Called(ctx, path))
}

func (m *mockAPI) RenameItem(ctx context.Context, oldPath, newPath string) (types.OperationResult, error) {
	return m.result(m.Called(ctx, oldPath, newPath))
}

func (m *mockAPI) CopyItem(ctx context.Context, source, destination string) (types.OperationResult, error) {
	return m.result(m.Called(ctx, source, destination))
}

func (m *mockAPI) OpenFile(ctx context.Context, path string) (types.OperationResult, error) {
	return m.result(m.Called(ctx, path))
}

func (m *mockAPI) ShowInFolder(ctx context.Context, path string) (types.OperationResult, error) {
	return m.result(m.Called(ctx, path))
}

func (m *mockAPI) GetHomeDirectory(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockAPI) GetDesktopDirectory(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockAPI) GetDocumentsDirectory(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockAPI) GetDownloadsDirectory(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// listing builds the contents of dir holding entries
func listing(dir string, entries ...types.FileEntry) *types.DirectoryContents {
	return &types.DirectoryContents{Path: dir, Items: entries}
}

func file(dir, name string, size int64) types.FileEntry {
	ext := ""
	for i := len(name) - 1; i > 0; i-- {
		if name[i] == '.' {
			ext = name[i:]
			break
		}
	}
	e := types.FileEntry{Name: name, Path: dir + "/" + name, Size: size}
	if ext != "" {
		e.Extension = &ext
	}
	return e
}

func folder(dir, name string) types.FileEntry {
	return types.FileEntry{Name: name, Path: dir + "/" + name, IsDirectory: true}
}
