package explorer

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/utils"
)

// FilteredItems returns the entries matching the search query, directories
// first, ordered by the current sort field and order
func (e *Engine) FilteredItems() []types.FileEntry {
	e.mu.RLock()
	items := cloneEntries(e.state.Items)
	query, field, order := e.state.SearchQuery, e.state.SortField, e.state.SortOrder
	e.mu.RUnlock()

	return FilterAndSort(items, query, field, order)
}

// FilterAndSort applies the search filter on names and a stable
// directories-first sort. items is reordered in place.
func FilterAndSort(items []types.FileEntry, query string, field SortField, order SortOrder) []types.FileEntry {
	if query != "" {
		match := matcher(query)
		items = slices.DeleteFunc(items, func(e types.FileEntry) bool {
			return !match(e.Name)
		})
	}

	names := utils.NewNameComparer()
	slices.SortStableFunc(items, func(a, b types.FileEntry) int {
		if a.IsDirectory != b.IsDirectory {
			if a.IsDirectory {
				return -1
			}
			return 1
		}

		var c int
		switch field {
		case SortBySize:
			c = cmp.Compare(a.Size, b.Size)
		case SortByModified:
			c = a.Modified.Compare(b.Modified)
		case SortByType:
			c = strings.Compare(a.Ext(), b.Ext())
		default:
			c = names.Compare(a.Name, b.Name)
		}

		if order == Descending {
			return -c
		}
		return c
	})
	return items
}

// Select toggles item when multi is set and otherwise makes it the only
// selected entry
func (e *Engine) Select(item types.FileEntry, multi bool) {
	e.update(func(s *State) {
		if !multi {
			s.Selected = cloneEntries([]types.FileEntry{item})
			return
		}
		if i := slices.IndexFunc(s.Selected, func(sel types.FileEntry) bool { return sel.Path == item.Path }); i >= 0 {
			s.Selected = slices.Delete(s.Selected, i, i+1)
			return
		}
		s.Selected = append(s.Selected, cloneEntries([]types.FileEntry{item})...)
	})
}

// SelectAll selects every loaded entry
func (e *Engine) SelectAll() {
	e.update(func(s *State) {
		s.Selected = cloneEntries(s.Items)
	})
}

// ClearSelection empties the selection
func (e *Engine) ClearSelection() {
	e.update(func(s *State) {
		s.Selected = nil
	})
}

// SetViewMode switches between list and grid layout
func (e *Engine) SetViewMode(mode ViewMode) {
	e.update(func(s *State) {
		s.ViewMode = mode
	})
}

// SetSearchQuery sets the name filter
func (e *Engine) SetSearchQuery(query string) {
	e.update(func(s *State) {
		s.SearchQuery = query
	})
}

// SetSorting sets the sort field. Without an explicit order, picking the
// current field again flips the order and picking a new field resets it to
// ascending.
func (e *Engine) SetSorting(field SortField, order ...SortOrder) {
	e.update(func(s *State) {
		switch {
		case len(order) > 0:
			s.SortOrder = order[0]
		case field == s.SortField:
			s.SortOrder = s.SortOrder.Toggle()
		default:
			s.SortOrder = Ascending
		}
		s.SortField = field
	})
}

// matcher builds the case-insensitive search predicate. A query holding glob
// metacharacters must match the whole name; anything else is a substring.
func matcher(query string) func(name string) bool {
	q := strings.ToLower(query)
	if strings.ContainsAny(q, "*?[{") && doublestar.ValidatePattern(q) {
		return func(name string) bool {
			ok, _ := doublestar.Match(q, strings.ToLower(name))
			return ok
		}
	}
	return func(name string) bool {
		return strings.Contains(strings.ToLower(name), q)
	}
}
