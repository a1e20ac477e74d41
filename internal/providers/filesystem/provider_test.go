package filesystem

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// TestProviderDefinition tests the tool definitions
func TestProviderDefinition(t *testing.T) {
	def := NewProvider(newTestOps(t)).Definition()

	assert.Equal(t, ServiceID, def.ID)
	assert.Equal(t, types.CategoryFilesystem, def.Category)
	assert.Len(t, def.Tools, 12)

	params := make(map[string][]string)
	for _, tool := range def.Tools {
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Description)
		params[tool.ID] = tool.RequiredParams()
	}

	assert.Equal(t, []string{"path"}, params[ToolReadDirectory])
	assert.Equal(t, []string{"parent_path", "name"}, params[ToolCreateFolder])
	assert.Equal(t, []string{"old_path", "new_path"}, params[ToolRenameItem])
	assert.Equal(t, []string{"source", "destination"}, params[ToolCopyItem])
	assert.Empty(t, params[ToolGetHomeDirectory])
}

// TestProviderExecute tests dispatch for read and mutating tools
func TestProviderExecute(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	p := NewProvider(newTestOps(t))
	ctx := context.Background()

	out, err := p.Execute(ctx, ToolCreateFolder, map[string]interface{}{
		"parent_path": root,
		"name":        "sub",
	})
	require.NoError(t, err)
	assert.Equal(t, types.Success(), out)

	out, err = p.Execute(ctx, ToolReadDirectory, map[string]interface{}{"path": root})
	require.NoError(t, err)
	contents, ok := out.(*types.DirectoryContents)
	require.True(t, ok)
	require.Len(t, contents.Items, 2)
	assert.Equal(t, "sub", contents.Items[0].Name)

	out, err = p.Execute(ctx, ToolDeleteItem, map[string]interface{}{"path": filepath.Join(root, "nope")})
	require.NoError(t, err)
	result := out.(types.OperationResult)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message(), "Failed to delete item: ")
}

// TestProviderReadErrors tests that read tools return an OpError
func TestProviderReadErrors(t *testing.T) {
	p := NewProvider(newTestOps(t))

	_, err := p.Execute(context.Background(), ToolGetFileStats, map[string]interface{}{
		"path": filepath.Join(t.TempDir(), "missing"),
	})
	var opErr *types.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, types.OpGetFileStats, opErr.Op)
}

// TestProviderLocations tests the well-known directory tools
func TestProviderLocations(t *testing.T) {
	home := t.TempDir()
	p := NewProvider(newTestOps(t, WithResolver(staticResolver(home))))

	out, err := p.Execute(context.Background(), ToolGetHomeDirectory, nil)
	require.NoError(t, err)
	assert.Equal(t, home, out)

	out, err = p.Execute(context.Background(), ToolGetDesktopDirectory, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Desktop"), out)
}

// TestProviderRejectsBadCalls tests unknown tools and unexpected parameters
func TestProviderRejectsBadCalls(t *testing.T) {
	p := NewProvider(newTestOps(t))
	ctx := context.Background()

	_, err := p.Execute(ctx, "fs.format", nil)
	assert.ErrorIs(t, err, ErrUnknownTool)

	_, err = p.Execute(ctx, ToolReadDirectory, map[string]interface{}{"path": "/", "recursive": "yes"})
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = p.Execute(ctx, ToolGetHomeDirectory, map[string]interface{}{"path": "/"})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}
