// Package paths resolves well-known user directories and answers simple
// structural questions about paths (root detection, parent, last component).
//
// # Well-known directories
//
// On Linux and the BSDs the desktop, documents and downloads folders come from
// the XDG user-dirs configuration:
//
//	$XDG_CONFIG_HOME/user-dirs.dirs   (default ~/.config/user-dirs.dirs)
//	XDG_DESKTOP_DIR="$HOME/Desktop"
//
// An XDG_*_DIR environment variable wins over the file. Everywhere else, and
// whenever no entry exists, the conventional folder under the home directory
// is returned.
//
// # Usage
//
//	r := paths.NewResolver()
//	docs, err := r.Resolve(types.WellKnownDocuments)
package paths
