package explorer

import (
	"slices"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/paths"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// ViewMode is how the front-end lays out entries
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewGrid ViewMode = "grid"
)

// SortField selects the secondary sort key; directories always come first
type SortField string

const (
	SortByName     SortField = "name"
	SortBySize     SortField = "size"
	SortByModified SortField = "modified"
	SortByType     SortField = "type"
)

// SortOrder is ascending or descending
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Toggle returns the opposite order
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// State is the UI-visible navigation state
type State struct {
	CurrentPath  string
	Items        []types.FileEntry
	Selected     []types.FileEntry
	History      []string
	HistoryIndex int
	Loading      bool
	Error        string

	ViewMode    ViewMode
	SortField   SortField
	SortOrder   SortOrder
	SearchQuery string
}

func initialState() State {
	return State{
		HistoryIndex: -1,
		ViewMode:     ViewList,
		SortField:    SortByName,
		SortOrder:    Ascending,
	}
}

// Clone returns a deep copy
func (s State) Clone() State {
	out := s
	out.Items = cloneEntries(s.Items)
	out.Selected = cloneEntries(s.Selected)
	out.History = slices.Clone(s.History)
	return out
}

func cloneEntries(entries []types.FileEntry) []types.FileEntry {
	if entries == nil {
		return nil
	}
	out := make([]types.FileEntry, len(entries))
	for i, e := range entries {
		if e.Extension != nil {
			ext := *e.Extension
			e.Extension = &ext
		}
		if e.Permissions != nil {
			perms := *e.Permissions
			e.Permissions = &perms
		}
		out[i] = e
	}
	return out
}

// CanNavigateBack reports whether there is an entry behind the pointer
func (s State) CanNavigateBack() bool {
	return s.HistoryIndex > 0
}

// CanNavigateForward reports whether there is an entry ahead of the pointer
func (s State) CanNavigateForward() bool {
	return s.HistoryIndex < len(s.History)-1
}

// CanNavigateUp reports whether the current directory has a parent
func (s State) CanNavigateUp() bool {
	return s.CurrentPath != "" && !paths.IsRoot(s.CurrentPath)
}

// IsSelected reports whether the entry at path is selected
func (s State) IsSelected(path string) bool {
	return slices.ContainsFunc(s.Selected, func(e types.FileEntry) bool { return e.Path == path })
}

// push records path as the newest history entry. Forward entries are
// dropped; revisiting the entry under the pointer changes nothing.
func (s *State) push(path string) {
	if s.HistoryIndex >= 0 && s.HistoryIndex < len(s.History) && s.History[s.HistoryIndex] == path {
		return
	}
	s.History = append(s.History[:s.HistoryIndex+1], path)
	s.HistoryIndex = len(s.History) - 1
}
