package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// API is the typed surface of the bridge. For mutating calls a non-nil
// error means the call did not complete (transport or rejection); a failed
// operation is reported in the OperationResult.
type API interface {
	ReadDirectory(ctx context.Context, path string) (*types.DirectoryContents, error)
	GetFileStats(ctx context.Context, path string) (*types.FileEntry, error)
	CreateFolder(ctx context.Context, parentPath, name string) (types.OperationResult, error)
	DeleteItem(ctx context.Context, path string) (types.OperationResult, error)
	RenameItem(ctx context.Context, oldPath, newPath string) (types.OperationResult, error)
	CopyItem(ctx context.Context, source, destination string) (types.OperationResult, error)
	OpenFile(ctx context.Context, path string) (types.OperationResult, error)
	ShowInFolder(ctx context.Context, path string) (types.OperationResult, error)
	GetHomeDirectory(ctx context.Context) (string, error)
	GetDesktopDirectory(ctx context.Context) (string, error)
	GetDocumentsDirectory(ctx context.Context) (string, error)
	GetDownloadsDirectory(ctx context.Context) (string, error)
}

// Client implements API over an Invoker
type Client struct {
	invoker Invoker
}

// NewClient creates a typed client
func NewClient(invoker Invoker) *Client {
	return &Client{invoker: invoker}
}

// Close closes the underlying invoker
func (c *Client) Close() error {
	return c.invoker.Close()
}

func call[T any](ctx context.Context, inv Invoker, channel string, args ...string) (T, error) {
	var out T
	raw, err := inv.Invoke(ctx, channel, args...)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s result: %w", channel, err)
	}
	return out, nil
}

func (c *Client) ReadDirectory(ctx context.Context, path string) (*types.DirectoryContents, error) {
	return call[*types.DirectoryContents](ctx, c.invoker, ChannelReadDirectory, path)
}

func (c *Client) GetFileStats(ctx context.Context, path string) (*types.FileEntry, error) {
	return call[*types.FileEntry](ctx, c.invoker, ChannelGetFileStats, path)
}

func (c *Client) CreateFolder(ctx context.Context, parentPath, name string) (types.OperationResult, error) {
	return call[types.OperationResult](ctx, c.invoker, ChannelCreateFolder, parentPath, name)
}

func (c *Client) DeleteItem(ctx context.Context, path string) (types.OperationResult, error) {
	return call[types.OperationResult](ctx, c.invoker, ChannelDeleteItem, path)
}

func (c *Client) RenameItem(ctx context.Context, oldPath, newPath string) (types.OperationResult, error) {
	return call[types.OperationResult](ctx, c.invoker, ChannelRenameItem, oldPath, newPath)
}

func (c *Client) CopyItem(ctx context.Context, source, destination string) (types.OperationResult, error) {
	return call[types.OperationResult](ctx, c.invoker, ChannelCopyItem, source, destination)
}

func (c *Client) OpenFile(ctx context.Context, path string) (types.OperationResult, error) {
	return call[types.OperationResult](ctx, c.invoker, ChannelOpenFile, path)
}

func (c *Client) ShowInFolder(ctx context.Context, path string) (types.OperationResult, error) {
	return call[types.OperationResult](ctx, c.invoker, ChannelShowInFolder, path)
}

func (c *Client) GetHomeDirectory(ctx context.Context) (string, error) {
	return call[string](ctx, c.invoker, ChannelGetHomeDirectory)
}

func (c *Client) GetDesktopDirectory(ctx context.Context) (string, error) {
	return call[string](ctx, c.invoker, ChannelGetDesktopDirectory)
}

func (c *Client) GetDocumentsDirectory(ctx context.Context) (string, error) {
	return call[string](ctx, c.invoker, ChannelGetDocumentsDirectory)
}

func (c *Client) GetDownloadsDirectory(ctx context.Context) (string, error) {
	return call[string](ctx, c.invoker, ChannelGetDownloadsDirectory)
}

var _ API = (*Client)(nil)
