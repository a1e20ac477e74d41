package types

import (
	"time"
)

// Permissions holds the result of checking an entry for access.
// A check that fails for any reason leaves its flag false.
type Permissions struct {
	Readable   bool `json:"readable"`
	Writable   bool `json:"writable"`
	Executable bool `json:"executable"`
}

// FileEntry represents one filesystem node in a listing
type FileEntry struct {
	Name        string       `json:"name"`
	Path        string       `json:"path"`
	IsDirectory bool         `json:"is_directory"`
	Size        int64        `json:"size"`
	Modified    time.Time    `json:"modified"`
	Created     time.Time    `json:"created"`
	Extension   *string      `json:"extension,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
	MimeType    string       `json:"mime_type,omitempty"` // only filled by stat
}

// Ext returns the extension or an empty string when there is none
func (e FileEntry) Ext() string {
	if e.Extension == nil {
		return ""
	}
	return *e.Extension
}

// DirectoryContents is the result of listing a directory
type DirectoryContents struct {
	Path   string      `json:"path"`
	Items  []FileEntry `json:"items"`
	Parent *string     `json:"parent,omitempty"`
}

// OperationResult is returned by every mutating operation.
// Failures are data, never errors.
type OperationResult struct {
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

// Message returns the failure message, or an empty string on success
func (r OperationResult) Message() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// Success returns a successful result
func Success() OperationResult {
	return OperationResult{Success: true}
}

// Failure returns a failed result carrying message
func Failure(message string) OperationResult {
	msg := message
	return OperationResult{Success: false, Error: &msg}
}

// WellKnown names an OS-resolved standard location
type WellKnown string

const (
	WellKnownHome      WellKnown = "home"
	WellKnownDesktop   WellKnown = "desktop"
	WellKnownDocuments WellKnown = "documents"
	WellKnownDownloads WellKnown = "downloads"
)
