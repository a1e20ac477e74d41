package bridge

import (
	"errors"
	"strings"
)

// Whitelisted channels
const (
	ChannelReadDirectory         = "fs:readDirectory"
	ChannelGetFileStats          = "fs:getFileStats"
	ChannelCreateFolder          = "fs:createFolder"
	ChannelDeleteItem            = "fs:deleteItem"
	ChannelRenameItem            = "fs:renameItem"
	ChannelCopyItem              = "fs:copyItem"
	ChannelOpenFile              = "fs:openFile"
	ChannelShowInFolder          = "fs:showInFolder"
	ChannelGetHomeDirectory      = "fs:getHomeDirectory"
	ChannelGetDesktopDirectory   = "fs:getDesktopDirectory"
	ChannelGetDocumentsDirectory = "fs:getDocumentsDirectory"
	ChannelGetDownloadsDirectory = "fs:getDownloadsDirectory"
)

var (
	// ErrUnknownChannel is returned for channels outside the whitelist
	ErrUnknownChannel = errors.New("unknown channel")
	// ErrArgCount is returned when the argument count does not match the channel
	ErrArgCount = errors.New("wrong number of arguments")
	// ErrRejected wraps every refusal reported by the remote side
	ErrRejected = errors.New("bridge rejected request")
)

// ToolID converts a channel name to its registry tool ID
func ToolID(channel string) string {
	return strings.Replace(channel, ":", ".", 1)
}

// ChannelName converts a registry tool ID to its channel name
func ChannelName(toolID string) string {
	return strings.Replace(toolID, ".", ":", 1)
}
