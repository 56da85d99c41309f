//go:build unix

package launcher

import (
	"fmt"
	"syscall"
)

func execProcess(path string, argv []string, env []string) error {
	if err := syscall.Exec(path, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
