package types

import (
	"fmt"
)

// Operation names used in prefixed failure messages
const (
	OpReadDirectory = "read directory"
	OpGetFileStats  = "get file stats"
	OpCreateFolder  = "create folder"
	OpDeleteItem    = "delete item"
	OpRenameItem    = "rename item"
	OpCopyItem      = "copy item"
	OpOpenFile      = "open file"
	OpShowInFolder  = "show in folder"
)

// OpError is a failed filesystem operation. It prints as
// "Failed to <op>: <cause>".
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("Failed to %s: %s", e.Op, e.Err.Error())
}

func (e *OpError) Unwrap() error { return e.Err }

// NewOpError wraps err for op
func NewOpError(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}

// FailureFor converts err into a failed OperationResult for op
func FailureFor(op string, err error) OperationResult {
	return Failure(NewOpError(op, err).Error())
}
