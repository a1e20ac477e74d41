//go:build !unix

package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var errDenied = errors.New("access denied")

// accessChecker approximates access(2) from mode bits and file type
type accessChecker struct{}

func (accessChecker) Access(path string, mode AccessMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	switch mode {
	case AccessRead:
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		return f.Close()
	case AccessWrite:
		if info.Mode().Perm()&0o200 == 0 {
			return errDenied
		}
		return nil
	case AccessExecute:
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".exe", ".bat", ".cmd", ".com", ".ps1":
			return nil
		}
		return errDenied
	}
	return errDenied
}
