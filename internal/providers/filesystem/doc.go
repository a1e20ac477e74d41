// Package filesystem is the only part of the explorer that touches the real
// filesystem. It runs in the privileged process behind the command bridge.
//
// This package is organized into specialized modules:
//   - directory: listing and folder creation
//   - metadata: stat, permission checks, extension and MIME detection
//   - operations: delete, rename, copy
//   - shell: open with the default application, reveal in the file manager,
//     well-known directories
//   - provider: tool definitions and dispatch for the service registry
//
// Error tiers:
//   - Reads (List, Stat) return *types.OpError, printed as
//     "Failed to read directory: <cause>" or "Failed to get file stats: <cause>".
//   - Mutations never return errors. Every fault becomes a
//     types.OperationResult with Success false and a prefixed message.
//
// A child that cannot be stat'd during a listing is dropped, logged at warn
// level and passed to the skip hook. The listing itself still succeeds.
//
// Example Usage:
//
//	ops := filesystem.NewFilesystemOps(logger)
//	dir := &filesystem.DirectoryOps{FilesystemOps: ops}
//	contents, err := dir.List(ctx, "/home/ada")
package filesystem
