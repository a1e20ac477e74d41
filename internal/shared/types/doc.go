// Package types provides shared data structures for the file explorer.
//
// These types cross the privilege boundary between the UI process and the
// privileged filesystem process, so every field carries a JSON tag and the
// zero values are meaningful on both sides.
//
// Core Types:
//   - FileEntry: One file or directory record returned by a listing
//   - Permissions: Independently checked read/write/execute flags
//   - DirectoryContents: Result of listing a directory
//   - OperationResult: Uniform result of every mutating operation
//   - OpError: Prefixed failure of a read operation
//
// Service Types:
//   - Service, Tool, Parameter: Whitelisted operation definitions
//
// Example Usage:
//
//	res := types.Failure("Failed to delete item: permission denied")
//	if !res.Success {
//	    fmt.Println(res.Message())
//	}
package types
