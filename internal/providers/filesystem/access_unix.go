//go:build unix

package filesystem

import "golang.org/x/sys/unix"

// accessChecker asks the kernel via access(2), so ACLs, read-only mounts and
// the effective uid are all taken into account
type accessChecker struct{}

func (accessChecker) Access(path string, mode AccessMode) error {
	var m uint32
	switch mode {
	case AccessRead:
		m = unix.R_OK
	case AccessWrite:
		m = unix.W_OK
	case AccessExecute:
		m = unix.X_OK
	}
	return unix.Access(path, m)
}
