package filesystem

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// ServiceID is the registry ID of the filesystem service
const ServiceID = "fs"

// Tool IDs, one per bridge channel
const (
	ToolReadDirectory         = "fs.readDirectory"
	ToolGetFileStats          = "fs.getFileStats"
	ToolCreateFolder          = "fs.createFolder"
	ToolDeleteItem            = "fs.deleteItem"
	ToolRenameItem            = "fs.renameItem"
	ToolCopyItem              = "fs.copyItem"
	ToolOpenFile              = "fs.openFile"
	ToolShowInFolder          = "fs.showInFolder"
	ToolGetHomeDirectory      = "fs.getHomeDirectory"
	ToolGetDesktopDirectory   = "fs.getDesktopDirectory"
	ToolGetDocumentsDirectory = "fs.getDocumentsDirectory"
	ToolGetDownloadsDirectory = "fs.getDownloadsDirectory"
)

var (
	// ErrUnknownTool is returned for tool IDs the provider does not define
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInvalidArguments is returned when params do not match the tool
	ErrInvalidArguments = errors.New("invalid arguments")
)

type pathArgs struct {
	Path string `mapstructure:"path"`
}

type createFolderArgs struct {
	ParentPath string `mapstructure:"parent_path"`
	Name       string `mapstructure:"name"`
}

type renameArgs struct {
	OldPath string `mapstructure:"old_path"`
	NewPath string `mapstructure:"new_path"`
}

type copyArgs struct {
	Source      string `mapstructure:"source"`
	Destination string `mapstructure:"destination"`
}

type noArgs struct{}

// Provider exposes the filesystem access layer as registry tools
type Provider struct {
	*FilesystemOps
	dir   *DirectoryOps
	meta  *MetadataOps
	ops   *OperationsOps
	shell *ShellOps
}

// NewProvider creates the filesystem provider
func NewProvider(ops *FilesystemOps) *Provider {
	return &Provider{
		FilesystemOps: ops,
		dir:           &DirectoryOps{FilesystemOps: ops},
		meta:          &MetadataOps{FilesystemOps: ops},
		ops:           &OperationsOps{FilesystemOps: ops},
		shell:         &ShellOps{FilesystemOps: ops},
	}
}

func pathParam(desc string) types.Parameter {
	return types.Parameter{Name: "path", Type: "string", Description: desc, Required: true}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          ServiceID,
		Name:        "Filesystem Service",
		Description: "Directory listing, file operations and desktop integration",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"list",
			"stat",
			"create",
			"delete",
			"rename",
			"copy",
			"open",
			"reveal",
			"locations",
		},
		Tools: []types.Tool{
			{
				ID:          ToolReadDirectory,
				Name:        "Read Directory",
				Description: "List the immediate children of a directory",
				Parameters:  []types.Parameter{pathParam("Directory path")},
				Returns:     "object",
			},
			{
				ID:          ToolGetFileStats,
				Name:        "File Stats",
				Description: "Get metadata for a single path",
				Parameters:  []types.Parameter{pathParam("File or directory path")},
				Returns:     "object",
			},
			{
				ID:          ToolCreateFolder,
				Name:        "Create Folder",
				Description: "Create one directory inside an existing parent",
				Parameters: []types.Parameter{
					{Name: "parent_path", Type: "string", Description: "Existing parent directory", Required: true},
					{Name: "name", Type: "string", Description: "New folder name", Required: true},
				},
				Returns: "result",
			},
			{
				ID:          ToolDeleteItem,
				Name:        "Delete Item",
				Description: "Delete a file, or a directory recursively",
				Parameters:  []types.Parameter{pathParam("File or directory path")},
				Returns:     "result",
			},
			{
				ID:          ToolRenameItem,
				Name:        "Rename Item",
				Description: "Rename or move a file or directory",
				Parameters: []types.Parameter{
					{Name: "old_path", Type: "string", Description: "Current path", Required: true},
					{Name: "new_path", Type: "string", Description: "New path", Required: true},
				},
				Returns: "result",
			},
			{
				ID:          ToolCopyItem,
				Name:        "Copy Item",
				Description: "Copy a file, or a directory recursively",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination path", Required: true},
				},
				Returns: "result",
			},
			{
				ID:          ToolOpenFile,
				Name:        "Open File",
				Description: "Open a path with its default application",
				Parameters:  []types.Parameter{pathParam("File or directory path")},
				Returns:     "result",
			},
			{
				ID:          ToolShowInFolder,
				Name:        "Show In Folder",
				Description: "Reveal a path in the platform file manager",
				Parameters:  []types.Parameter{pathParam("File or directory path")},
				Returns:     "result",
			},
			{ID: ToolGetHomeDirectory, Name: "Home Directory", Description: "Resolve the home directory", Returns: "string"},
			{ID: ToolGetDesktopDirectory, Name: "Desktop Directory", Description: "Resolve the desktop directory", Returns: "string"},
			{ID: ToolGetDocumentsDirectory, Name: "Documents Directory", Description: "Resolve the documents directory", Returns: "string"},
			{ID: ToolGetDownloadsDirectory, Name: "Downloads Directory", Description: "Resolve the downloads directory", Returns: "string"},
		},
	}
}

// Execute runs a filesystem tool. Read tools return *types.OpError on
// failure; mutating tools always return a types.OperationResult and a nil
// error. A non-nil error from a mutating tool means the call never reached
// the filesystem.
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (interface{}, error) {
	switch toolID {
	case ToolReadDirectory:
		var args pathArgs
		if err := decodeArgs(params, &args); err != nil {
			return nil, err
		}
		return p.dir.List(ctx, args.Path)

	case ToolGetFileStats:
		var args pathArgs
		if err := decodeArgs(params, &args); err != nil {
			return nil, err
		}
		return p.meta.Stat(ctx, args.Path)

	case ToolCreateFolder:
		var args createFolderArgs
		if err := decodeArgs(params, &args); err != nil {
			return nil, err
		}
		return p.dir.CreateFolder(ctx, args.ParentPath, args.Name), nil

	case ToolDeleteItem:
		var args pathArgs
		if err := decodeArgs(params, &args); err != nil {
			return nil, err
		}
		return p.ops.Delete(ctx, args.Path), nil

	case ToolRenameItem:
		var args renameArgs
		if err := decodeArgs(params, &args); err != nil {
			return nil, err
		}
		return p.ops.Rename(ctx, args.OldPath, args.NewPath), nil

	case ToolCopyItem:
		var args copyArgs
		if err := decodeArgs(params, &args); err != nil {
			return nil, err
		}
		return p.ops.Copy(ctx, args.Source, args.Destination), nil

	case ToolOpenFile:
		var args pathArgs
		if err := decodeArgs(params, &args); err != nil {
			return nil, err
		}
		return p.shell.OpenWithDefaultApp(ctx, args.Path), nil

	case ToolShowInFolder:
		var args pathArgs
		if err := decodeArgs(params, &args); err != nil {
			return nil, err
		}
		return p.shell.RevealInFileManager(ctx, args.Path), nil

	case ToolGetHomeDirectory:
		return p.location(ctx, params, types.WellKnownHome)
	case ToolGetDesktopDirectory:
		return p.location(ctx, params, types.WellKnownDesktop)
	case ToolGetDocumentsDirectory:
		return p.location(ctx, params, types.WellKnownDocuments)
	case ToolGetDownloadsDirectory:
		return p.location(ctx, params, types.WellKnownDownloads)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, toolID)
	}
}

func (p *Provider) location(ctx context.Context, params map[string]interface{}, kind types.WellKnown) (interface{}, error) {
	if err := decodeArgs(params, &noArgs{}); err != nil {
		return nil, err
	}

	dir, err := p.shell.WellKnownDirectory(ctx, kind)
	if err != nil {
		p.Logger.Error("Failed to resolve directory", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}
	return dir, nil
}

// decodeArgs fills out from params, rejecting unknown keys
func decodeArgs(params map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}
